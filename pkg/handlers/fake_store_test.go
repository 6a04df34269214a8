package handlers

import (
	"campaign-site-backend/pkg/database"
	"campaign-site-backend/pkg/models"
)

// fakeStore implements the store interface through per-method function
// fields. The embedded nil interface panics on anything a test did not
// stub, which catches handlers calling more than they should.
type fakeStore struct {
	database.DatabaseInterface

	listEventsFn    func(page, limit int) (*database.EventPage, error)
	getEventFn      func(id string) (*models.Event, error)
	createEventFn   func(in *models.EventInput) (*models.Event, error)
	updateEventFn   func(id string, in *models.EventInput) (*models.Event, error)
	deleteEventFn   func(id string) error
	setFeaturedFn   func(id string, featured bool) error
	listFeaturedFn  func(limit int) ([]models.Event, error)
	createContactFn func(req *models.ContactRequest) (*models.ContactSubmission, error)
	listContactsFn  func(status string) ([]models.ContactSubmission, error)
	updateStatusFn  func(id string, status models.ContactStatus) error
	getAdminFn      func(email string) (*models.AdminUser, error)
	getAboutFn      func() (*models.AboutPage, error)
	updateAboutFn   func(id string, in *models.AboutPageInput) (*models.AboutPage, error)
	getHeroFn       func() (*models.Hero, error)
	updateHeroFn    func(id string, in *models.HeroInput) (*models.Hero, error)
	createPosFn     func(in *models.PositionInput) (*models.Position, error)
	setCurrentFn    func(id string, current bool) error
	getStatsFn      func() (*database.AdminStats, error)
	listRecentFn    func(limit int) ([]database.RecentActivity, error)
}

func (f *fakeStore) ListEvents(page, limit int) (*database.EventPage, error) {
	return f.listEventsFn(page, limit)
}

func (f *fakeStore) GetEvent(id string) (*models.Event, error) {
	return f.getEventFn(id)
}

func (f *fakeStore) CreateEvent(in *models.EventInput) (*models.Event, error) {
	return f.createEventFn(in)
}

func (f *fakeStore) UpdateEvent(id string, in *models.EventInput) (*models.Event, error) {
	return f.updateEventFn(id, in)
}

func (f *fakeStore) DeleteEvent(id string) error {
	return f.deleteEventFn(id)
}

func (f *fakeStore) SetEventFeatured(id string, featured bool) error {
	return f.setFeaturedFn(id, featured)
}

func (f *fakeStore) ListFeaturedEvents(limit int) ([]models.Event, error) {
	return f.listFeaturedFn(limit)
}

func (f *fakeStore) CreateContactSubmission(req *models.ContactRequest) (*models.ContactSubmission, error) {
	return f.createContactFn(req)
}

func (f *fakeStore) ListContactSubmissions(status string) ([]models.ContactSubmission, error) {
	return f.listContactsFn(status)
}

func (f *fakeStore) UpdateContactStatus(id string, status models.ContactStatus) error {
	return f.updateStatusFn(id, status)
}

func (f *fakeStore) GetAdminByEmail(email string) (*models.AdminUser, error) {
	return f.getAdminFn(email)
}

func (f *fakeStore) GetAboutPage() (*models.AboutPage, error) {
	return f.getAboutFn()
}

func (f *fakeStore) UpdateAboutPage(id string, in *models.AboutPageInput) (*models.AboutPage, error) {
	return f.updateAboutFn(id, in)
}

func (f *fakeStore) GetHero() (*models.Hero, error) {
	return f.getHeroFn()
}

func (f *fakeStore) UpdateHero(id string, in *models.HeroInput) (*models.Hero, error) {
	return f.updateHeroFn(id, in)
}

func (f *fakeStore) CreatePosition(in *models.PositionInput) (*models.Position, error) {
	return f.createPosFn(in)
}

func (f *fakeStore) SetPositionCurrent(id string, current bool) error {
	return f.setCurrentFn(id, current)
}

func (f *fakeStore) GetAdminStats() (*database.AdminStats, error) {
	return f.getStatsFn()
}

func (f *fakeStore) ListRecentActivity(limit int) ([]database.RecentActivity, error) {
	return f.listRecentFn(limit)
}
