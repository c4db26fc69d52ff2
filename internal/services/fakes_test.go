package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"stayrooted/internal/models/db_models"
	"stayrooted/pkg/utils"
)

// In-memory repository fakes. Insert assigns IDs the way the gorm hook
// does, and the unique-pair repositories reject duplicates with the same
// sentinel errors the real ones translate from duplicate-key failures.

type fakeUserRepo struct {
	users map[uuid.UUID]*db_models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*db_models.User)}
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*db_models.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) addUser(username string) *db_models.User {
	u := &db_models.User{Username: username, Email: username + "@example.com", FullName: username, IsActive: true}
	_ = f.Insert(context.Background(), u)
	return u
}

type fakePrayerRepo struct {
	prayers map[uuid.UUID]*db_models.Prayer
	updates *fakePrayerUpdateRepo

	markAnsweredErr error
}

func newFakePrayerRepo(updates *fakePrayerUpdateRepo) *fakePrayerRepo {
	return &fakePrayerRepo{
		prayers: make(map[uuid.UUID]*db_models.Prayer),
		updates: updates,
	}
}

func (f *fakePrayerRepo) Insert(ctx context.Context, prayer *db_models.Prayer) error {
	if prayer.ID == uuid.Nil {
		prayer.ID = uuid.New()
	}
	f.prayers[prayer.ID] = prayer
	return nil
}

func (f *fakePrayerRepo) Update(ctx context.Context, prayer *db_models.Prayer) error {
	copied := *prayer
	f.prayers[prayer.ID] = &copied
	return nil
}

// MarkAnswered mirrors the transactional semantics: on failure nothing is
// stored, not even the status change the service already applied to its
// loaded copy.
func (f *fakePrayerRepo) MarkAnswered(ctx context.Context, prayer *db_models.Prayer, update *db_models.PrayerUpdate) error {
	if f.markAnsweredErr != nil {
		return f.markAnsweredErr
	}
	copied := *prayer
	f.prayers[prayer.ID] = &copied
	return f.updates.Insert(ctx, update)
}

func (f *fakePrayerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.prayers, id)
	return nil
}

func (f *fakePrayerRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Prayer, error) {
	p := f.prayers[id]
	if p == nil {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (f *fakePrayerRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.Prayer, error) {
	var out []db_models.Prayer
	for _, p := range f.prayers {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePrayerRepo) ListShared(ctx context.Context) ([]db_models.Prayer, error) {
	var out []db_models.Prayer
	for _, p := range f.prayers {
		if p.Visibility != db_models.PrayerVisibilityPrivate {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePrayerRepo) ListAnsweredShared(ctx context.Context) ([]db_models.Prayer, error) {
	var out []db_models.Prayer
	for _, p := range f.prayers {
		if p.Visibility != db_models.PrayerVisibilityPrivate && p.Status == db_models.PrayerStatusAnswered {
			out = append(out, *p)
		}
	}
	return out, nil
}

type fakePrayerFollowerRepo struct {
	followers map[uuid.UUID]*db_models.PrayerFollower
	prayers   *fakePrayerRepo
}

func newFakePrayerFollowerRepo(prayers *fakePrayerRepo) *fakePrayerFollowerRepo {
	return &fakePrayerFollowerRepo{
		followers: make(map[uuid.UUID]*db_models.PrayerFollower),
		prayers:   prayers,
	}
}

func (f *fakePrayerFollowerRepo) Insert(ctx context.Context, follower *db_models.PrayerFollower) error {
	for _, existing := range f.followers {
		if existing.PrayerID == follower.PrayerID && existing.UserID == follower.UserID {
			return utils.ErrAlreadyFollowing
		}
	}
	if follower.ID == uuid.Nil {
		follower.ID = uuid.New()
	}
	f.followers[follower.ID] = follower
	return nil
}

func (f *fakePrayerFollowerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.followers, id)
	return nil
}

func (f *fakePrayerFollowerRepo) FindByPrayerAndUser(ctx context.Context, prayerID, userID uuid.UUID) (*db_models.PrayerFollower, error) {
	for _, fl := range f.followers {
		if fl.PrayerID == prayerID && fl.UserID == userID {
			return fl, nil
		}
	}
	return nil, nil
}

func (f *fakePrayerFollowerRepo) Exists(ctx context.Context, prayerID, userID uuid.UUID) (bool, error) {
	fl, _ := f.FindByPrayerAndUser(ctx, prayerID, userID)
	return fl != nil, nil
}

func (f *fakePrayerFollowerRepo) ListByPrayerID(ctx context.Context, prayerID uuid.UUID) ([]db_models.PrayerFollower, error) {
	var out []db_models.PrayerFollower
	for _, fl := range f.followers {
		if fl.PrayerID == prayerID {
			out = append(out, *fl)
		}
	}
	return out, nil
}

func (f *fakePrayerFollowerRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.PrayerFollower, error) {
	var out []db_models.PrayerFollower
	for _, fl := range f.followers {
		if fl.UserID == userID {
			copied := *fl
			if f.prayers != nil {
				if p := f.prayers.prayers[fl.PrayerID]; p != nil {
					copied.Prayer = *p
				}
			}
			out = append(out, copied)
		}
	}
	return out, nil
}

func (f *fakePrayerFollowerRepo) CountByPrayerID(ctx context.Context, prayerID uuid.UUID) (int64, error) {
	var n int64
	for _, fl := range f.followers {
		if fl.PrayerID == prayerID {
			n++
		}
	}
	return n, nil
}

type fakePrayerUpdateRepo struct {
	updates []*db_models.PrayerUpdate
}

func newFakePrayerUpdateRepo() *fakePrayerUpdateRepo {
	return &fakePrayerUpdateRepo{}
}

func (f *fakePrayerUpdateRepo) Insert(ctx context.Context, update *db_models.PrayerUpdate) error {
	if update.ID == uuid.Nil {
		update.ID = uuid.New()
	}
	f.updates = append(f.updates, update)
	return nil
}

func (f *fakePrayerUpdateRepo) ListByPrayerID(ctx context.Context, prayerID uuid.UUID) ([]db_models.PrayerUpdate, error) {
	var out []db_models.PrayerUpdate
	for _, u := range f.updates {
		if u.PrayerID == prayerID {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakePrayerUpdateRepo) CountByPrayerID(ctx context.Context, prayerID uuid.UUID) (int64, error) {
	updates, _ := f.ListByPrayerID(ctx, prayerID)
	return int64(len(updates)), nil
}

type fakeOrganizationRepo struct {
	orgs    map[uuid.UUID]*db_models.Organization
	members *fakeOrganizationMemberRepo

	insertWithAdminErr error
}

func newFakeOrganizationRepo(members *fakeOrganizationMemberRepo) *fakeOrganizationRepo {
	return &fakeOrganizationRepo{
		orgs:    make(map[uuid.UUID]*db_models.Organization),
		members: members,
	}
}

func (f *fakeOrganizationRepo) Insert(ctx context.Context, org *db_models.Organization) error {
	if org.ID == uuid.Nil {
		org.ID = uuid.New()
	}
	f.orgs[org.ID] = org
	return nil
}

// InsertWithAdmin mirrors the transactional semantics: on failure the
// organization is not stored either.
func (f *fakeOrganizationRepo) InsertWithAdmin(ctx context.Context, org *db_models.Organization, member *db_models.OrganizationMember) error {
	if f.insertWithAdminErr != nil {
		return f.insertWithAdminErr
	}
	if err := f.Insert(ctx, org); err != nil {
		return err
	}
	member.OrganizationID = org.ID
	if err := f.members.Insert(ctx, member); err != nil {
		delete(f.orgs, org.ID)
		return err
	}
	return nil
}

func (f *fakeOrganizationRepo) Update(ctx context.Context, org *db_models.Organization) error {
	f.orgs[org.ID] = org
	return nil
}

func (f *fakeOrganizationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.orgs, id)
	return nil
}

func (f *fakeOrganizationRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Organization, error) {
	return f.orgs[id], nil
}

func (f *fakeOrganizationRepo) ListAll(ctx context.Context) ([]db_models.Organization, error) {
	var out []db_models.Organization
	for _, o := range f.orgs {
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrganizationRepo) ListVerified(ctx context.Context) ([]db_models.Organization, error) {
	var out []db_models.Organization
	for _, o := range f.orgs {
		if o.IsVerified {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrganizationRepo) SearchByName(ctx context.Context, searchTerm string) ([]db_models.Organization, error) {
	var out []db_models.Organization
	for _, o := range f.orgs {
		if strings.Contains(strings.ToLower(o.Name), strings.ToLower(searchTerm)) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrganizationRepo) FindNearby(ctx context.Context, latitude, longitude, radiusMeters float64) ([]db_models.Organization, error) {
	var out []db_models.Organization
	for _, o := range f.orgs {
		if o.Latitude == nil || o.Longitude == nil {
			continue
		}
		if utils.DistanceKm(latitude, longitude, *o.Latitude, *o.Longitude)*1000 <= radiusMeters {
			out = append(out, *o)
		}
	}
	return out, nil
}

type fakeOrganizationMemberRepo struct {
	members map[uuid.UUID]*db_models.OrganizationMember
	users   *fakeUserRepo
}

func newFakeOrganizationMemberRepo(users *fakeUserRepo) *fakeOrganizationMemberRepo {
	return &fakeOrganizationMemberRepo{
		members: make(map[uuid.UUID]*db_models.OrganizationMember),
		users:   users,
	}
}

func (f *fakeOrganizationMemberRepo) Insert(ctx context.Context, member *db_models.OrganizationMember) error {
	for _, existing := range f.members {
		if existing.OrganizationID == member.OrganizationID && existing.UserID == member.UserID {
			return utils.ErrAlreadyMember
		}
	}
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	f.members[member.ID] = member
	return nil
}

func (f *fakeOrganizationMemberRepo) Update(ctx context.Context, member *db_models.OrganizationMember) error {
	f.members[member.ID] = member
	return nil
}

func (f *fakeOrganizationMemberRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.members, id)
	return nil
}

func (f *fakeOrganizationMemberRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.OrganizationMember, error) {
	m := f.members[id]
	if m == nil {
		return nil, nil
	}
	copied := *m
	f.attachUser(&copied)
	return &copied, nil
}

func (f *fakeOrganizationMemberRepo) FindByOrganizationAndUser(ctx context.Context, organizationID, userID uuid.UUID) (*db_models.OrganizationMember, error) {
	for _, m := range f.members {
		if m.OrganizationID == organizationID && m.UserID == userID {
			copied := *m
			f.attachUser(&copied)
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeOrganizationMemberRepo) ListByOrganizationID(ctx context.Context, organizationID uuid.UUID) ([]db_models.OrganizationMember, error) {
	var out []db_models.OrganizationMember
	for _, m := range f.members {
		if m.OrganizationID == organizationID {
			copied := *m
			f.attachUser(&copied)
			out = append(out, copied)
		}
	}
	return out, nil
}

func (f *fakeOrganizationMemberRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]db_models.OrganizationMember, error) {
	var out []db_models.OrganizationMember
	for _, m := range f.members {
		if m.UserID == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeOrganizationMemberRepo) CountByOrganizationID(ctx context.Context, organizationID uuid.UUID) (int64, error) {
	members, _ := f.ListByOrganizationID(ctx, organizationID)
	return int64(len(members)), nil
}

func (f *fakeOrganizationMemberRepo) attachUser(m *db_models.OrganizationMember) {
	if f.users == nil {
		return
	}
	if u := f.users.users[m.UserID]; u != nil {
		m.User = *u
	}
}

type fakeEventRepo struct {
	events map[uuid.UUID]*db_models.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[uuid.UUID]*db_models.Event)}
}

func (f *fakeEventRepo) Insert(ctx context.Context, event *db_models.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) Update(ctx context.Context, event *db_models.Event) error {
	f.events[event.ID] = event
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Event, error) {
	return f.events[id], nil
}

func (f *fakeEventRepo) ListUpcoming(ctx context.Context, now time.Time) ([]db_models.Event, error) {
	var out []db_models.Event
	for _, e := range f.events {
		if e.EventDate.After(now) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListByOrganizationID(ctx context.Context, organizationID uuid.UUID) ([]db_models.Event, error) {
	var out []db_models.Event
	for _, e := range f.events {
		if e.OrganizationID != nil && *e.OrganizationID == organizationID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListUpcomingByType(ctx context.Context, eventType string, now time.Time) ([]db_models.Event, error) {
	var out []db_models.Event
	for _, e := range f.events {
		if e.EventType == eventType && e.EventDate.After(now) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) ListByCreatorID(ctx context.Context, creatorID uuid.UUID) ([]db_models.Event, error) {
	var out []db_models.Event
	for _, e := range f.events {
		if e.CreatedByID == creatorID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) Search(ctx context.Context, searchTerm string, now time.Time) ([]db_models.Event, error) {
	var out []db_models.Event
	needle := strings.ToLower(searchTerm)
	for _, e := range f.events {
		if !e.EventDate.After(now) {
			continue
		}
		if strings.Contains(strings.ToLower(e.Title), needle) || strings.Contains(strings.ToLower(e.Description), needle) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) FindNearby(ctx context.Context, latitude, longitude, radiusMeters float64, eventType string, now time.Time) ([]db_models.Event, error) {
	var out []db_models.Event
	for _, e := range f.events {
		if e.Latitude == nil || e.Longitude == nil || !e.EventDate.After(now) {
			continue
		}
		if eventType != "" && e.EventType != eventType {
			continue
		}
		if utils.DistanceKm(latitude, longitude, *e.Latitude, *e.Longitude)*1000 <= radiusMeters {
			out = append(out, *e)
		}
	}
	return out, nil
}

type fakeDailyContentRepo struct {
	items []*db_models.DailyContent
}

func newFakeDailyContentRepo() *fakeDailyContentRepo {
	return &fakeDailyContentRepo{}
}

func (f *fakeDailyContentRepo) Insert(ctx context.Context, content *db_models.DailyContent) error {
	if content.ID == uuid.Nil {
		content.ID = uuid.New()
	}
	f.items = append(f.items, content)
	return nil
}

func (f *fakeDailyContentRepo) FindByPublishDate(ctx context.Context, date time.Time) (*db_models.DailyContent, error) {
	day := date.Format("2006-01-02")
	for _, c := range f.items {
		if c.IsPublished && c.PublishDate.Format("2006-01-02") == day {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeDailyContentRepo) List(ctx context.Context, page, pageSize int) ([]db_models.DailyContent, error) {
	start := (page - 1) * pageSize
	if start >= len(f.items) {
		return nil, nil
	}
	end := start + pageSize
	if end > len(f.items) {
		end = len(f.items)
	}
	out := make([]db_models.DailyContent, 0, end-start)
	for _, c := range f.items[start:end] {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeDailyContentRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.items)), nil
}
