package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &userRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userColumns() []string {
	return []string{"id", "username", "password_hash", "role", "status"}
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username:     "alice",
		PasswordHash: "pbkdf2_sha256$150000$c2FsdA==$a2V5",
		Role:         models.RoleStaff,
		Status:       models.StatusActive,
	}

	rows := sqlmock.
		NewRows(userColumns()).
		AddRow(1, user.Username, user.PasswordHash, user.Role, user.Status)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.PasswordHash, user.Role, user.Status).
		WillReturnRows(rows)

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Username != user.Username {
		t.Errorf("expected username %s, got %s", user.Username, created.Username)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "alice"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestCreateUser_ScanError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "alice"}

	rows := sqlmock.
		NewRows([]string{"id"}). // intentionally wrong shape → scan error
		AddRow(1)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(rows)

	_, err := repo.CreateUser(ctx, user)
	if err == nil {
		t.Fatal("expected scan error, got nil")
	}
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows(userColumns()).
		AddRow(7, "alice", "hash", "staff", "active")

	mock.ExpectQuery("SELECT id").
		WithArgs("alice").
		WillReturnRows(rows)

	found, err := repo.FindUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != 7 {
		t.Errorf("expected ID=7, got %d", found.ID)
	}
	if found.Role != models.RoleStaff {
		t.Errorf("expected role staff, got %s", found.Role)
	}
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.FindUserByUsername(ctx, "nobody")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows(userColumns()).
		AddRow(7, "alice", "hash", "admin", "active")

	mock.ExpectQuery("SELECT id").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	found, err := repo.FindUserByID(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Username != "alice" {
		t.Errorf("expected username alice, got %s", found.Username)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.FindUserByID(ctx, 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestListUsers_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows(userColumns()).
		AddRow(1, "alice", "hash-a", "admin", "active").
		AddRow(2, "bob", "hash-b", "staff", "inactive")

	mock.ExpectQuery("SELECT id").
		WillReturnRows(rows)

	users, err := repo.ListUsers(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[1].Status != models.StatusInactive {
		t.Errorf("expected second user inactive, got %s", users[1].Status)
	}
}

func TestListUsers_QueryError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id").
		WillReturnError(errors.New("db failure"))

	_, err := repo.ListUsers(ctx)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestUpdateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	newRole := models.RoleAdmin
	update := models.UserUpdate{ID: 7, Role: &newRole}

	mock.ExpectExec("UPDATE users").
		WithArgs(newRole, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows := sqlmock.
		NewRows(userColumns()).
		AddRow(7, "alice", "hash", "admin", "active")
	mock.ExpectQuery("SELECT id").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	updated, err := repo.UpdateUser(ctx, update)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Role != models.RoleAdmin {
		t.Errorf("expected role admin, got %s", updated.Role)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	username := "ghost"
	update := models.UserUpdate{ID: 404, Username: &username}

	mock.ExpectExec("UPDATE users").
		WithArgs(username, int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateUser(ctx, update)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUser_UsernameTaken(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	username := "bob"
	update := models.UserUpdate{ID: 7, Username: &username}

	mock.ExpectExec("UPDATE users").
		WithArgs(username, int64(7)).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateUser(ctx, update)
	if !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("expected ErrUsernameAlreadyExists, got %v", err)
	}
}

func TestDeleteUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteUser(ctx, 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteUser(ctx, 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCountAdmins_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(models.RoleAdmin).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountAdmins(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 admins, got %d", count)
	}
}

func TestCountAdmins_DBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(models.RoleAdmin).
		WillReturnError(errors.New("db failure"))

	_, err := repo.CountAdmins(ctx)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}
