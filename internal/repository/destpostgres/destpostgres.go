// Package destpostgres stores destinations and user visualizations in Postgres
package destpostgres

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
	"github.com/wb-go/wbf/dbpg"
)

type PostgresRepo struct {
	DB *dbpg.DB
}

func (p PostgresRepo) ListDestinations(ctx context.Context, continent string, limit int) ([]model.Destination, error) {
	query := `SELECT id, name, country, city, continent, description, image_url, rating, price, best_time, highlights
	FROM destinations
	WHERE ($1 = '' OR lower(continent) = lower($1))
	ORDER BY name
	LIMIT $2`

	rows, err := p.DB.QueryContext(ctx, query, continent, limit)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	res := make([]model.Destination, 0, limit)
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *d)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}

func (p PostgresRepo) GetDestination(ctx context.Context, id string) (*model.Destination, error) {
	query := `SELECT id, name, country, city, continent, description, image_url, rating, price, best_time, highlights
	FROM destinations
	WHERE id = $1`

	d, err := scanDestination(p.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, model.ErrDestinationNotFound // 404
		default:
			return nil, err // 500
		}
	}
	return d, nil
}

func (p PostgresRepo) ListContinents(ctx context.Context) ([]model.Continent, error) {
	query := `SELECT continent, COUNT(*)
	FROM destinations
	WHERE continent <> ''
	GROUP BY continent
	ORDER BY continent`

	rows, err := p.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	res := []model.Continent{}
	for rows.Next() {
		var c model.Continent
		if err := rows.Scan(&c.Name, &c.Count); err != nil {
			return nil, err
		}
		res = append(res, c)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}

func (p PostgresRepo) CreateVisualization(ctx context.Context, v *model.Visualization) error {
	query := `INSERT INTO user_visualizations (id, destination_id, user_photo_url, generated_image_url, strategy, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := p.DB.Master.ExecContext(ctx, query, v.ID, v.DestinationID, v.UserPhotoURL, v.GeneratedImageURL, v.Strategy, v.CreatedAt)
	return err
}

// ListVisualizations returns newest first, each with its destination summary when the destination is known
func (p PostgresRepo) ListVisualizations(ctx context.Context, limit int) ([]model.Visualization, error) {
	query := `SELECT v.id, v.destination_id, v.user_photo_url, v.generated_image_url, v.strategy, v.created_at,
	d.id, d.name, d.country, d.city, d.continent
	FROM user_visualizations v
	LEFT JOIN destinations d ON d.id = v.destination_id
	ORDER BY v.created_at DESC
	LIMIT $1`

	rows, err := p.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer closeRows(rows)

	res := make([]model.Visualization, 0, limit)
	for rows.Next() {
		var v model.Visualization
		var strategy sql.NullString
		var dID, dName, dCountry, dCity, dContinent sql.NullString
		if err := rows.Scan(&v.ID,
			&v.DestinationID,
			&v.UserPhotoURL,
			&v.GeneratedImageURL,
			&strategy,
			&v.CreatedAt,
			&dID,
			&dName,
			&dCountry,
			&dCity,
			&dContinent); err != nil {
			return nil, err
		}
		v.Strategy = strategy.String
		if dID.Valid {
			v.Destination = &model.DestinationSummary{
				ID:        dID.String,
				Name:      dName.String,
				Country:   dCountry.String,
				City:      dCity.String,
				Continent: dContinent.String,
			}
		}
		res = append(res, v)
	}

	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}

func (p PostgresRepo) Ping(ctx context.Context) error {
	return p.DB.Master.PingContext(ctx)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDestination(row scanner) (*model.Destination, error) {
	var d model.Destination
	var city, description, imageURL, price, bestTime sql.NullString
	var rating sql.NullFloat64

	if err := row.Scan(&d.ID,
		&d.Name,
		&d.Country,
		&city,
		&d.Continent,
		&description,
		&imageURL,
		&rating,
		&price,
		&bestTime,
		&d.Highlights); err != nil {
		return nil, err
	}

	d.City = city.String
	d.Description = description.String
	d.ImageURL = imageURL.String
	d.Rating = rating.Float64
	d.Price = price.String
	d.BestTime = bestTime.String
	return &d, nil
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		log.Printf("Error while closing *sql.Rows after scanning: %v", err)
	}
}
