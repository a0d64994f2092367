// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Motel Bela Vista

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/motelbelavista/website/models"
)

const (
	createUser = `INSERT INTO users (username, password_hash, role, status)
    VALUES ($1, $2, $3, $4)
    RETURNING id, username, password_hash, role, status;`

	findUserByID = `SELECT id, username, password_hash, role, status
    FROM users
    WHERE id = $1;`

	findUserByUsername = `SELECT id, username, password_hash, role, status
    FROM users
    WHERE username = $1;`

	listUsers = `SELECT id, username, password_hash, role, status
    FROM users
    ORDER BY username;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	countAdmins = `SELECT COUNT(*) FROM users WHERE role = $1;`

	findSuiteByID = `SELECT s.id, s.title, s.slug, COALESCE(s.type_id, 0), COALESCE(t.name, ''), s.description,
		s.hourly_price, s.overnight_price, s.featured, s.position, s.status
    FROM suites s
    LEFT JOIN suite_types t ON t.id = s.type_id
    WHERE s.id = $1;`

	findSuiteBySlug = `SELECT s.id, s.title, s.slug, COALESCE(s.type_id, 0), COALESCE(t.name, ''), s.description,
		s.hourly_price, s.overnight_price, s.featured, s.position, s.status
    FROM suites s
    LEFT JOIN suite_types t ON t.id = s.type_id
    WHERE s.slug = $1;`

	createSuite = `INSERT INTO suites (title, slug, type_id, description, hourly_price, overnight_price, featured, position, status)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING id;`

	deleteSuite = `DELETE FROM suites WHERE id = $1;`

	listSuiteAmenities = `SELECT a.id, a.name, a.icon
    FROM amenities a
    JOIN suite_amenities sa ON sa.amenity_id = a.id
    WHERE sa.suite_id = $1
    ORDER BY a.name;`

	deleteSuiteAmenities = `DELETE FROM suite_amenities WHERE suite_id = $1;`

	insertSuiteAmenity = `INSERT INTO suite_amenities (suite_id, amenity_id) VALUES ($1, $2);`

	listPhotos = `SELECT id, suite_id, url, caption, position, cover
    FROM photos
    WHERE suite_id = $1
    ORDER BY cover DESC, position, id;`

	createPhoto = `INSERT INTO photos (suite_id, url, caption, position, cover)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id;`

	deletePhoto = `DELETE FROM photos WHERE id = $1;`

	listSuiteTypes = `SELECT id, name, description, position
    FROM suite_types
    ORDER BY position, name;`

	createSuiteType = `INSERT INTO suite_types (name, description, position)
    VALUES ($1, $2, $3)
    RETURNING id;`

	updateSuiteType = `UPDATE suite_types SET name = $1, description = $2, position = $3
    WHERE id = $4;`

	deleteSuiteType = `DELETE FROM suite_types WHERE id = $1;`

	listAmenities = `SELECT id, name, icon FROM amenities ORDER BY name;`

	createAmenity = `INSERT INTO amenities (name, icon) VALUES ($1, $2) RETURNING id;`

	updateAmenity = `UPDATE amenities SET name = $1, icon = $2 WHERE id = $3;`

	deleteAmenity = `DELETE FROM amenities WHERE id = $1;`

	listStaff = `SELECT id, name, job_title, phone, whatsapp, email, status, position
    FROM staff
    ORDER BY position, name;`

	listActiveStaff = `SELECT id, name, job_title, phone, whatsapp, email, status, position
    FROM staff
    WHERE status = 'active'
    ORDER BY position, name;`

	createStaff = `INSERT INTO staff (name, job_title, phone, whatsapp, email, status, position)
    VALUES ($1, $2, $3, $4, $5, $6, $7)
    RETURNING id;`

	updateStaff = `UPDATE staff SET name = $1, job_title = $2, phone = $3, whatsapp = $4, email = $5, status = $6, position = $7
    WHERE id = $8;`

	deleteStaff = `DELETE FROM staff WHERE id = $1;`

	getSiteConfig = `SELECT id, site_name, tagline, address, whatsapp, phone, email, primary_color, maps_embed_url, updated_at
    FROM site_config
    WHERE id = 1;`

	upsertSiteConfig = `INSERT INTO site_config (id, site_name, tagline, address, whatsapp, phone, email, primary_color, maps_embed_url, updated_at)
    VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, NOW())
    ON CONFLICT (id) DO UPDATE SET
		site_name = EXCLUDED.site_name,
		tagline = EXCLUDED.tagline,
		address = EXCLUDED.address,
		whatsapp = EXCLUDED.whatsapp,
		phone = EXCLUDED.phone,
		email = EXCLUDED.email,
		primary_color = EXCLUDED.primary_color,
		maps_embed_url = EXCLUDED.maps_embed_url,
		updated_at = NOW()
    RETURNING id, site_name, tagline, address, whatsapp, phone, email, primary_color, maps_embed_url, updated_at;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// positional placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildListSuitesQuery builds the filtered catalog listing. The ordering is
// fixed: featured suites first, then editor position, then title.
func buildListSuitesQuery(filter models.SuiteFilter) (string, []any, error) {
	builder := psql.
		Select(
			"s.id", "s.title", "s.slug", "COALESCE(s.type_id, 0)", "COALESCE(t.name, '')",
			"s.description", "s.hourly_price", "s.overnight_price",
			"s.featured", "s.position", "s.status",
		).
		From("suites s").
		LeftJoin("suite_types t ON t.id = s.type_id").
		OrderBy("s.featured DESC", "s.position", "s.title")

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"s.status": filter.Status})
	}
	if filter.TypeID != 0 {
		builder = builder.Where(sq.Eq{"s.type_id": filter.TypeID})
	}
	if filter.FeaturedOnly {
		builder = builder.Where(sq.Eq{"s.featured": true})
	}

	return builder.ToSql()
}

// buildUpdateSuiteQuery builds a partial UPDATE touching only the fields set
// in the request. updated_at bookkeeping is not needed: suites carry no
// timestamps.
func buildUpdateSuiteQuery(update models.SuiteUpdate) (string, []any, error) {
	builder := psql.Update("suites")

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Slug != nil {
		builder = builder.Set("slug", *update.Slug)
	}
	if update.TypeID != nil {
		// zero means "detach from its type": stored as NULL
		builder = builder.Set("type_id", nullableID(*update.TypeID))
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}
	if update.HourlyPrice != nil {
		builder = builder.Set("hourly_price", *update.HourlyPrice)
	}
	if update.OvernightPrice != nil {
		builder = builder.Set("overnight_price", *update.OvernightPrice)
	}
	if update.Featured != nil {
		builder = builder.Set("featured", *update.Featured)
	}
	if update.Position != nil {
		builder = builder.Set("position", *update.Position)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}

	return builder.Where(sq.Eq{"id": update.ID}).ToSql()
}

// buildUpdateUserQuery builds a partial UPDATE of a user account.
func buildUpdateUserQuery(update models.UserUpdate) (string, []any, error) {
	builder := psql.Update("users")

	if update.Username != nil {
		builder = builder.Set("username", *update.Username)
	}
	if update.PasswordHash != nil {
		builder = builder.Set("password_hash", *update.PasswordHash)
	}
	if update.Role != nil {
		builder = builder.Set("role", *update.Role)
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
	}

	return builder.Where(sq.Eq{"id": update.ID}).ToSql()
}
