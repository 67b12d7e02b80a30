package vehicle

import (
	"context"
	"io"
	"strings"
	"testing"

	vehicleRepo "autodetail/database/repository/vehicle"
	"autodetail/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVehicleRepo struct {
	vehicleRepo.VehicleRepository
	byID    map[string]*models.Vehicle
	updated []*models.Vehicle
	deleted []string
	records []models.ServiceRecord
}

func newFakeRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{byID: map[string]*models.Vehicle{}}
}

func (f *fakeVehicleRepo) GetByID(id string) (*models.Vehicle, error) { return f.byID[id], nil }

func (f *fakeVehicleRepo) Create(v *models.Vehicle) error {
	f.byID[v.ID] = v
	return nil
}

func (f *fakeVehicleRepo) Update(v *models.Vehicle) error {
	f.updated = append(f.updated, v)
	f.byID[v.ID] = v
	return nil
}

func (f *fakeVehicleRepo) Delete(id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.byID, id)
	return nil
}

func (f *fakeVehicleRepo) ListServiceRecords(vehicleID string) ([]models.ServiceRecord, error) {
	return f.records, nil
}

type fakeStorage struct {
	uploads int
}

func (f *fakeStorage) UploadImage(ctx context.Context, file io.Reader, folder, name string) (string, string, error) {
	f.uploads++
	return "https://cdn.example.com/" + folder + "/" + name + ".jpg", name, nil
}

func (f *fakeStorage) DeleteImage(ctx context.Context, publicID string) error { return nil }

func TestCreateVehicleAssignsOwnership(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultVehicleService{Repo: repo}

	v, err := svc.CreateVehicle("cust-1", &models.Vehicle{Make: "Audi", Model: "A4"})
	require.NoError(t, err)
	assert.NotEmpty(t, v.ID)
	assert.Equal(t, "cust-1", v.OwnerID)
	assert.False(t, v.CreatedAt.IsZero())
}

func TestGetVehicleEnforcesOwnership(t *testing.T) {
	repo := newFakeRepo()
	repo.byID["veh-1"] = &models.Vehicle{ID: "veh-1", OwnerID: "cust-1"}
	svc := &DefaultVehicleService{Repo: repo}

	_, err := svc.GetVehicle("someone-else", "veh-1")
	assert.ErrorIs(t, err, ErrNotOwner)

	v, err := svc.GetVehicle("cust-1", "veh-1")
	require.NoError(t, err)
	assert.Equal(t, "veh-1", v.ID)
}

func TestUpdateVehiclePreservesServerFields(t *testing.T) {
	repo := newFakeRepo()
	repo.byID["veh-1"] = &models.Vehicle{
		ID: "veh-1", OwnerID: "cust-1", PhotoURL: "https://cdn.example.com/old.jpg",
	}
	svc := &DefaultVehicleService{Repo: repo}

	v, err := svc.UpdateVehicle("cust-1", &models.Vehicle{
		ID: "veh-1", OwnerID: "hijack", Make: "BMW", PhotoURL: "https://evil.example.com/x.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "cust-1", v.OwnerID)
	assert.Equal(t, "https://cdn.example.com/old.jpg", v.PhotoURL)
	assert.Equal(t, "BMW", v.Make)
}

func TestDeleteVehicle(t *testing.T) {
	repo := newFakeRepo()
	repo.byID["veh-1"] = &models.Vehicle{ID: "veh-1", OwnerID: "cust-1"}
	svc := &DefaultVehicleService{Repo: repo}

	require.NoError(t, svc.DeleteVehicle("cust-1", "veh-1"))
	assert.Equal(t, []string{"veh-1"}, repo.deleted)
}

func TestUploadPhotoStoresURL(t *testing.T) {
	repo := newFakeRepo()
	repo.byID["veh-1"] = &models.Vehicle{ID: "veh-1", OwnerID: "cust-1"}
	store := &fakeStorage{}
	svc := &DefaultVehicleService{Repo: repo, Storage: store}

	v, err := svc.UploadPhoto(context.Background(), "cust-1", "veh-1", strings.NewReader("jpegbytes"))
	require.NoError(t, err)
	assert.Equal(t, 1, store.uploads)
	assert.Equal(t, "https://cdn.example.com/vehicles/veh-1.jpg", v.PhotoURL)
	require.Len(t, repo.updated, 1)
}

func TestUploadPhotoWithoutStorage(t *testing.T) {
	repo := newFakeRepo()
	repo.byID["veh-1"] = &models.Vehicle{ID: "veh-1", OwnerID: "cust-1"}
	svc := &DefaultVehicleService{Repo: repo}

	_, err := svc.UploadPhoto(context.Background(), "cust-1", "veh-1", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestServiceHistory(t *testing.T) {
	repo := newFakeRepo()
	repo.byID["veh-1"] = &models.Vehicle{ID: "veh-1", OwnerID: "cust-1"}
	repo.records = []models.ServiceRecord{{ID: "rec-1", VehicleID: "veh-1", ServiceName: "Wax"}}
	svc := &DefaultVehicleService{Repo: repo}

	records, err := svc.ServiceHistory("cust-1", "veh-1")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Wax", records[0].ServiceName)
}
