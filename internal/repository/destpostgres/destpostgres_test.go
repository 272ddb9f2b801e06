package destpostgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jhanaviii/AI-Travel-Agent/internal/model"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

var destColumns = []string{
	"id", "name", "country", "city", "continent", "description",
	"image_url", "rating", "price", "best_time", "highlights",
}

func newRepoWithMock(t *testing.T) (PostgresRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return PostgresRepo{DB: &dbpg.DB{Master: db}}, mock
}

// LISTDESTINATIONS - SUCCESS
func TestPostgresRepo_ListDestinations_OK(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	rows := sqlmock.NewRows(destColumns).
		AddRow("d1", "Kyoto, Japan", "Japan", "Kyoto", "Asia", "Temples", "https://img/kyoto.jpg", 4.7, "$$", "Spring", []byte(`["Temples","Tea"]`)).
		AddRow("d2", "Osaka, Japan", "Japan", nil, "Asia", nil, nil, nil, nil, nil, nil)

	mock.ExpectQuery(`SELECT id, name, country`).
		WithArgs("Asia", 10).
		WillReturnRows(rows)

	res, err := repo.ListDestinations(context.Background(), "Asia", 10)
	require.NoError(t, err)
	require.Len(t, res, 2)

	require.Equal(t, model.StringSlice{"Temples", "Tea"}, res[0].Highlights)
	require.Equal(t, 4.7, res[0].Rating)

	// optional columns come back empty, defaults are the caller's job
	require.Equal(t, "", res[1].City)
	require.Equal(t, 0.0, res[1].Rating)
	require.Empty(t, res[1].Highlights)

	require.NoError(t, mock.ExpectationsWereMet())
}

// LISTDESTINATIONS - FAIL
func TestPostgresRepo_ListDestinations_Error(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`SELECT id, name, country`).
		WithArgs("", 50).
		WillReturnError(errors.New("connection refused"))

	_, err := repo.ListDestinations(context.Background(), "", 50)
	require.Error(t, err)
}

// GETDESTINATION - SUCCESS
func TestPostgresRepo_GetDestination_OK(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	rows := sqlmock.NewRows(destColumns).
		AddRow("d1", "Banff", "Canada", "Banff", "North America", "Lakes", "https://img/banff.jpg", 4.9, "$$", "Summer", []byte(`[]`))

	mock.ExpectQuery(`WHERE id = \$1`).
		WithArgs("d1").
		WillReturnRows(rows)

	d, err := repo.GetDestination(context.Background(), "d1")
	require.NoError(t, err)
	require.Equal(t, "Banff", d.Name)
	require.Equal(t, "https://img/banff.jpg", d.ImageURL)
}

// GETDESTINATION - NOT FOUND
func TestPostgresRepo_GetDestination_NotFound(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`WHERE id = \$1`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetDestination(context.Background(), "nope")
	require.ErrorIs(t, err, model.ErrDestinationNotFound)
}

// LISTCONTINENTS - SUCCESS
func TestPostgresRepo_ListContinents_OK(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	rows := sqlmock.NewRows([]string{"continent", "count"}).
		AddRow("Asia", 3).
		AddRow("Europe", 2)

	mock.ExpectQuery(`GROUP BY continent`).WillReturnRows(rows)

	res, err := repo.ListContinents(context.Background())
	require.NoError(t, err)
	require.Equal(t, []model.Continent{{Name: "Asia", Count: 3}, {Name: "Europe", Count: 2}}, res)
}

// CREATEVISUALIZATION - SUCCESS
func TestPostgresRepo_CreateVisualization_OK(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	now := time.Now()
	v := &model.Visualization{
		ID:                uuid.New(),
		DestinationID:     "d1",
		UserPhotoURL:      "https://cdn/u.jpg",
		GeneratedImageURL: "https://cdn/g.jpg",
		Strategy:          "postcard",
		CreatedAt:         &now,
	}

	mock.ExpectExec(`INSERT INTO user_visualizations`).
		WithArgs(v.ID, v.DestinationID, v.UserPhotoURL, v.GeneratedImageURL, v.Strategy, v.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateVisualization(context.Background(), v))
	require.NoError(t, mock.ExpectationsWereMet())
}

// LISTVISUALIZATIONS - SUCCESS
func TestPostgresRepo_ListVisualizations_OK(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	id1, id2 := uuid.New(), uuid.New()
	rows := sqlmock.NewRows([]string{
		"id", "destination_id", "user_photo_url", "generated_image_url", "strategy", "created_at",
		"d_id", "d_name", "d_country", "d_city", "d_continent",
	}).
		AddRow(id1.String(), "d1", "u1", "g1", "remote", time.Now(), "d1", "Kyoto", "Japan", "Kyoto", "Asia").
		AddRow(id2.String(), "gone", "u2", "g2", nil, time.Now().Add(-time.Hour), nil, nil, nil, nil, nil)

	mock.ExpectQuery(`FROM user_visualizations v`).
		WithArgs(20).
		WillReturnRows(rows)

	res, err := repo.ListVisualizations(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, id1, res[0].ID)
	require.Equal(t, "Kyoto", res[0].Destination.Name)
	require.Equal(t, "remote", res[0].Strategy)
	require.Nil(t, res[1].Destination)
	require.Equal(t, "", res[1].Strategy)
}

// PING
func TestPostgresRepo_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := PostgresRepo{DB: &dbpg.DB{Master: db}}

	mock.ExpectPing()
	require.NoError(t, repo.Ping(context.Background()))

	mock.ExpectPing().WillReturnError(errors.New("down"))
	require.Error(t, repo.Ping(context.Background()))
}
