package business

import (
	"errors"
	"testing"

	businessRepo "salonpro/database/repository/business"
	"salonpro/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBusinessRepo struct {
	byEmail    map[string]*models.Business
	byEmailErr error
	created    []*models.Business
}

func (f *fakeBusinessRepo) Create(b *models.Business) error {
	f.created = append(f.created, b)
	return nil
}
func (f *fakeBusinessRepo) GetByID(id string) (*models.Business, error) {
	return nil, businessRepo.ErrNotFound
}
func (f *fakeBusinessRepo) GetByEmail(email string) (*models.Business, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	if b, ok := f.byEmail[email]; ok {
		return b, nil
	}
	return nil, businessRepo.ErrNotFound
}
func (f *fakeBusinessRepo) GetPublicByID(id string) (*models.BusinessPublic, error) {
	return nil, businessRepo.ErrNotFound
}
func (f *fakeBusinessRepo) GetAll() ([]models.Business, error) { return nil, nil }
func (f *fakeBusinessRepo) Delete(id string) error             { return nil }

type fakeHoursStore struct {
	seeded []models.BusinessHours
}

func (f *fakeHoursStore) SeedWeek(hours []models.BusinessHours) error {
	f.seeded = append(f.seeded, hours...)
	return nil
}
func (f *fakeHoursStore) GetWeek(businessID string) ([]models.BusinessHours, error) {
	return nil, nil
}
func (f *fakeHoursStore) GetDay(businessID string, day int) (*models.BusinessHours, error) {
	return nil, nil
}
func (f *fakeHoursStore) UpdateDay(hours models.BusinessHours) error { return nil }
func (f *fakeHoursStore) DeleteByBusiness(businessID string) error   { return nil }

type fakeLeadStore struct {
	created []*models.Lead
}

func (f *fakeLeadStore) Create(l *models.Lead) error {
	f.created = append(f.created, l)
	return nil
}
func (f *fakeLeadStore) GetAll() ([]models.Lead, error) { return nil, nil }
func (f *fakeLeadStore) UpdateStatus(leadID, status string) (*models.Lead, error) {
	return nil, nil
}
func (f *fakeLeadStore) DeleteByBusiness(businessID string) error { return nil }

func registration() models.BusinessRegistration {
	return models.BusinessRegistration{
		OwnerName:    "Sam Okafor",
		BusinessName: "Shear Genius",
		Phone:        "555-0199",
		Email:        "owner@sheargenius.test",
		Password:     "long-enough-secret",
	}
}

func newRegisterService(repo *fakeBusinessRepo) (*DefaultBusinessService, *fakeHoursStore, *fakeLeadStore) {
	hours := &fakeHoursStore{}
	leads := &fakeLeadStore{}
	svc := &DefaultBusinessService{
		Repo:    repo,
		Hours:   hours,
		Leads:   leads,
		BaseURL: "https://salonpro.test",
	}
	return svc, hours, leads
}

func TestRegisterSeedsHoursAndLead(t *testing.T) {
	repo := &fakeBusinessRepo{}
	svc, hours, leads := newRegisterService(repo)

	biz, err := svc.Register(registration())
	require.NoError(t, err)

	assert.NotEmpty(t, biz.ID)
	assert.Equal(t, BookingURL("https://salonpro.test", biz.ID), biz.QRCodeData)
	assert.NotEqual(t, "long-enough-secret", biz.PasswordHash)

	require.Len(t, hours.seeded, 7)
	require.Len(t, leads.created, 1)
	assert.Equal(t, models.LeadNew, leads.created[0].Status)
	assert.Equal(t, biz.ID, leads.created[0].BusinessID)
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	reg := registration()
	repo := &fakeBusinessRepo{byEmail: map[string]*models.Business{
		reg.Email: {ID: "biz1", Email: reg.Email},
	}}
	svc, _, _ := newRegisterService(repo)

	_, err := svc.Register(reg)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Empty(t, repo.created)
}

func TestRegisterSurfacesEmailLookupFailure(t *testing.T) {
	lookupErr := errors.New("server selection timeout")
	repo := &fakeBusinessRepo{byEmailErr: lookupErr}
	svc, _, _ := newRegisterService(repo)

	_, err := svc.Register(registration())
	require.Error(t, err)
	assert.ErrorIs(t, err, lookupErr)
	// A failed uniqueness check must not fall through to an insert.
	assert.Empty(t, repo.created)
}
