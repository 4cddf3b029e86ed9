package services

import (
	"context"
	"testing"

	"restaurant-directory/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCityService_CRUD(t *testing.T) {
	svc := NewCityService(newTestDB(t), nopLogger())
	ctx := context.Background()

	leones, err := svc.Create(ctx, " Leones ")
	require.NoError(t, err)
	assert.Equal(t, "Leones", leones.Name)

	_, err = svc.Create(ctx, "Leones")
	assert.ErrorIs(t, err, models.ErrConflict)

	_, err = svc.Create(ctx, "")
	assert.ErrorIs(t, err, models.ErrValidation)

	cordoba, err := svc.Create(ctx, "Cordoba")
	require.NoError(t, err)
	renamed, err := svc.Update(ctx, cordoba.ID, "Córdoba")
	require.NoError(t, err)
	assert.Equal(t, "Córdoba", renamed.Name)

	_, err = svc.Update(ctx, cordoba.ID, "Leones")
	assert.ErrorIs(t, err, models.ErrConflict)
	_, err = svc.Update(ctx, 999, "Anywhere")
	assert.ErrorIs(t, err, models.ErrNotFound)

	cities, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "Córdoba", cities[0].Name)

	got, err := svc.Get(ctx, leones.ID)
	require.NoError(t, err)
	assert.Equal(t, "Leones", got.Name)

	require.NoError(t, svc.Delete(ctx, leones.ID))
	_, err = svc.Get(ctx, leones.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, leones.ID), models.ErrNotFound)
}

func TestCityService_DeleteReferencedCityIsConflict(t *testing.T) {
	db := newTestDB(t)
	cities := NewCityService(db, nopLogger())
	restaurants := NewRestaurantService(db, nopLogger())
	ctx := context.Background()

	created, err := restaurants.Create(ctx, restaurantInput("El Fogón", "Río Cuarto"))
	require.NoError(t, err)

	err = cities.Delete(ctx, *created.CityID)
	assert.ErrorIs(t, err, models.ErrConflict)

	require.NoError(t, restaurants.Delete(ctx, created.ID))
	assert.NoError(t, cities.Delete(ctx, *created.CityID))
}

func TestFindOrCreateCity(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	created, err := findOrCreateCity(ctx, db, "Marcos Juarez")
	require.NoError(t, err)
	found, err := findOrCreateCity(ctx, db, "Marcos Juarez")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	// Lookups are exact: a different spelling is a different city.
	other, err := findOrCreateCity(ctx, db, "marcos juarez")
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, other.ID)
}
