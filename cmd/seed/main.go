// Command seed populates a freshly installed site with the catalog the sales
// team signed off on: suite types, the shared amenity list and one suite per
// floor plan. It drives the same admin API the back office uses and is
// idempotent: entries that already exist (matched by name or slug) are left
// untouched, so it is safe to re-run after partial failures.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/motelbelavista/website/internal/logger"
	"github.com/motelbelavista/website/models"
)

type seedSuite struct {
	Title          string
	TypeName       string
	Description    string
	HourlyPrice    string
	OvernightPrice string
	Featured       bool
	Position       int
	AmenityNames   []string
}

var suiteTypes = []models.SuiteType{
	{Name: "Standard", Description: "Conforto essencial para a sua estadia", Position: 1},
	{Name: "Luxo", Description: "Acabamento superior e hidromassagem", Position: 2},
	{Name: "Master", Description: "A experiência completa da casa", Position: 3},
}

var amenities = []models.Amenity{
	{Name: "Ar-condicionado", Icon: "snowflake"},
	{Name: "Frigobar", Icon: "fridge"},
	{Name: "TV a cabo", Icon: "tv"},
	{Name: "Wi-Fi", Icon: "wifi"},
	{Name: "Hidromassagem", Icon: "bath"},
	{Name: "Garagem privativa", Icon: "car"},
	{Name: "Som ambiente", Icon: "music"},
}

var suites = []seedSuite{
	{
		Title:          "Suíte Standard",
		TypeName:       "Standard",
		Description:    "Suíte aconchegante com garagem privativa e toda a privacidade que você procura.",
		HourlyPrice:    "70.00",
		OvernightPrice: "120.00",
		Position:       1,
		AmenityNames:   []string{"Ar-condicionado", "Frigobar", "TV a cabo", "Wi-Fi", "Garagem privativa"},
	},
	{
		Title:          "Suíte Luxo",
		TypeName:       "Luxo",
		Description:    "Suíte ampla com banheira de hidromassagem para dois e iluminação ambiente.",
		HourlyPrice:    "110.00",
		OvernightPrice: "180.00",
		Featured:       true,
		Position:       2,
		AmenityNames:   []string{"Ar-condicionado", "Frigobar", "TV a cabo", "Wi-Fi", "Garagem privativa", "Hidromassagem"},
	},
	{
		Title:          "Suíte Master Hidro",
		TypeName:       "Master",
		Description:    "A maior suíte da casa: hidromassagem, som ambiente e decoração exclusiva.",
		HourlyPrice:    "150.00",
		OvernightPrice: "240.00",
		Featured:       true,
		Position:       3,
		AmenityNames:   []string{"Ar-condicionado", "Frigobar", "TV a cabo", "Wi-Fi", "Garagem privativa", "Hidromassagem", "Som ambiente"},
	},
}

func main() {
	var (
		baseURL  string
		username string
		password string
	)
	flag.StringVar(&baseURL, "addr", "http://localhost:8080", "base URL of the running server")
	flag.StringVar(&username, "user", os.Getenv("APP_ADMIN_USER"), "admin username")
	flag.StringVar(&password, "pass", os.Getenv("APP_ADMIN_PASS"), "admin password")
	flag.Parse()

	log := logger.NewLogger("belavista-seed")

	if username == "" || password == "" {
		log.Fatal().Msg("admin credentials are required (-user/-pass or APP_ADMIN_USER/APP_ADMIN_PASS)")
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(15 * time.Second)

	if err := login(client, username, password); err != nil {
		log.Fatal().Err(err).Msg("login failed")
	}

	typeIDs, err := seedSuiteTypes(client)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding suite types failed")
	}
	log.Info().Int("count", len(typeIDs)).Msg("suite types in place")

	amenityIDs, err := seedAmenities(client)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding amenities failed")
	}
	log.Info().Int("count", len(amenityIDs)).Msg("amenities in place")

	created, err := seedSuites(client, typeIDs, amenityIDs)
	if err != nil {
		log.Fatal().Err(err).Msg("seeding suites failed")
	}
	log.Info().Int("created", created).Msg("seed finished")
}

// login authenticates against the public login endpoint. The session cookie
// lands in the client's cookie jar and rides along on every later request.
func login(client *resty.Client, username, password string) error {
	resp, err := client.R().
		SetBody(models.Credentials{Username: username, Password: password}).
		Post("/api/login")
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}
	return nil
}

func seedSuiteTypes(client *resty.Client) (map[string]int64, error) {
	var existing []models.SuiteType
	if err := getJSON(client, "/api/admin/suite-types", &existing); err != nil {
		return nil, err
	}

	ids := make(map[string]int64, len(suiteTypes))
	for _, st := range existing {
		ids[st.Name] = st.ID
	}

	for _, st := range suiteTypes {
		if _, ok := ids[st.Name]; ok {
			continue
		}
		var created models.SuiteType
		if err := postJSON(client, "/api/admin/suite-types", st, &created); err != nil {
			return nil, fmt.Errorf("creating suite type %q: %w", st.Name, err)
		}
		ids[created.Name] = created.ID
	}

	return ids, nil
}

func seedAmenities(client *resty.Client) (map[string]int64, error) {
	var existing []models.Amenity
	if err := getJSON(client, "/api/admin/amenities", &existing); err != nil {
		return nil, err
	}

	ids := make(map[string]int64, len(amenities))
	for _, a := range existing {
		ids[a.Name] = a.ID
	}

	for _, a := range amenities {
		if _, ok := ids[a.Name]; ok {
			continue
		}
		var created models.Amenity
		if err := postJSON(client, "/api/admin/amenities", a, &created); err != nil {
			return nil, fmt.Errorf("creating amenity %q: %w", a.Name, err)
		}
		ids[created.Name] = created.ID
	}

	return ids, nil
}

func seedSuites(client *resty.Client, typeIDs, amenityIDs map[string]int64) (int, error) {
	var existing []models.Suite
	if err := getJSON(client, "/api/admin/suites", &existing); err != nil {
		return 0, err
	}

	taken := make(map[string]bool, len(existing))
	for _, s := range existing {
		taken[s.Title] = true
	}

	created := 0
	for _, seed := range suites {
		if taken[seed.Title] {
			continue
		}

		var linkIDs []int64
		for _, name := range seed.AmenityNames {
			if id, ok := amenityIDs[name]; ok {
				linkIDs = append(linkIDs, id)
			}
		}

		body := struct {
			models.Suite
			AmenityIDs []int64 `json:"amenity_ids"`
		}{
			Suite: models.Suite{
				Title:          seed.Title,
				TypeID:         typeIDs[seed.TypeName],
				Description:    seed.Description,
				HourlyPrice:    seed.HourlyPrice,
				OvernightPrice: seed.OvernightPrice,
				Featured:       seed.Featured,
				Position:       seed.Position,
				Status:         models.SuiteActive,
			},
			AmenityIDs: linkIDs,
		}

		if err := postJSON(client, "/api/admin/suites", body, nil); err != nil {
			return created, fmt.Errorf("creating suite %q: %w", seed.Title, err)
		}
		created++
	}

	return created, nil
}

func getJSON(client *resty.Client, path string, out any) error {
	resp, err := client.R().SetResult(out).Get(path)
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %d", path, resp.StatusCode())
	}
	return nil
}

func postJSON(client *resty.Client, path string, body, out any) error {
	req := client.R().SetBody(body)
	if out != nil {
		req.SetResult(out)
	}
	resp, err := req.Post(path)
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusCreated && resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("POST %s: unexpected status %d: %s", path, resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}
	return nil
}
