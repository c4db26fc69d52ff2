package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"stayrooted/internal/models/db_models"
	"stayrooted/internal/models/request_models"
	"stayrooted/pkg/utils"
)

type eventFixture struct {
	svc     EventServiceInterface
	orgSvc  OrganizationServiceInterface
	users   *fakeUserRepo
	events  *fakeEventRepo
	members *fakeOrganizationMemberRepo
}

func newEventFixture() *eventFixture {
	users := newFakeUserRepo()
	members := newFakeOrganizationMemberRepo(users)
	orgs := newFakeOrganizationRepo(members)
	events := newFakeEventRepo()
	return &eventFixture{
		svc:     NewEventService(events, orgs, members, users),
		orgSvc:  NewOrganizationService(orgs, members, users),
		users:   users,
		events:  events,
		members: members,
	}
}

func nextWeek() time.Time {
	return time.Now().Add(7 * 24 * time.Hour)
}

func TestCreateStandaloneEvent(t *testing.T) {
	f := newEventFixture()
	creator := f.users.addUser("paul")

	resp, err := f.svc.CreateEvent(context.Background(), creator.ID, request_models.CreateEventRequest{
		Title:        "Park outreach",
		Description:  "Sharing the gospel downtown",
		EventType:    db_models.EventTypeEvangelisticOutreach,
		LocationName: "Central Park",
		EventDate:    nextWeek(),
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if resp.CreatedByUserID != creator.ID.String() {
		t.Errorf("CreatedByUserID = %q, want %q", resp.CreatedByUserID, creator.ID)
	}
	if resp.OrganizationID != "" {
		t.Errorf("OrganizationID = %q, want empty", resp.OrganizationID)
	}
}

func TestCreateOrgEventRequiresManagingRole(t *testing.T) {
	f := newEventFixture()
	creator := f.users.addUser("paul")
	member := f.users.addUser("silas")
	outsider := f.users.addUser("demas")
	ctx := context.Background()

	orgID := createOrg(t, f.orgSvc, creator.ID, "Harvest Church")
	if _, err := f.orgSvc.JoinOrganization(ctx, orgID, member.ID); err != nil {
		t.Fatalf("JoinOrganization: %v", err)
	}

	req := request_models.CreateEventRequest{
		OrganizationID: &orgID,
		Title:          "Midweek study",
		Description:    "Romans chapter 8",
		EventType:      db_models.EventTypeBibleStudy,
		LocationName:   "Fellowship hall",
		EventDate:      nextWeek(),
	}

	if _, err := f.svc.CreateEvent(ctx, member.ID, req); !errors.Is(err, utils.ErrForbidden) {
		t.Errorf("plain member create: got %v, want ErrForbidden", err)
	}
	if _, err := f.svc.CreateEvent(ctx, outsider.ID, req); !errors.Is(err, utils.ErrForbidden) {
		t.Errorf("outsider create: got %v, want ErrForbidden", err)
	}

	memberRec, err := f.members.FindByOrganizationAndUser(ctx, orgID, member.ID)
	if err != nil || memberRec == nil {
		t.Fatalf("membership lookup: %v, %v", memberRec, err)
	}
	if _, err := f.orgSvc.UpdateMemberRole(ctx, orgID, memberRec.ID, db_models.OrganizationRoleModerator, creator.ID); err != nil {
		t.Fatalf("promote member: %v", err)
	}

	resp, err := f.svc.CreateEvent(ctx, member.ID, req)
	if err != nil {
		t.Fatalf("moderator create: %v", err)
	}
	if resp.OrganizationName != "Harvest Church" {
		t.Errorf("OrganizationName = %q, want fallback to org name", resp.OrganizationName)
	}
}

func TestCreateOrgEventUnknownOrganization(t *testing.T) {
	f := newEventFixture()
	creator := f.users.addUser("paul")
	missing := uuid.New()

	_, err := f.svc.CreateEvent(context.Background(), creator.ID, request_models.CreateEventRequest{
		OrganizationID: &missing,
		Title:          "Ghost event",
		Description:    "No such organization",
		EventType:      db_models.EventTypePrayerMeeting,
		LocationName:   "Nowhere",
		EventDate:      nextWeek(),
	})
	if !errors.Is(err, utils.ErrOrganizationNotFound) {
		t.Errorf("got %v, want ErrOrganizationNotFound", err)
	}
}

func TestOrgAdminManagesMembersEvents(t *testing.T) {
	f := newEventFixture()
	admin := f.users.addUser("paul")
	moderator := f.users.addUser("silas")
	ctx := context.Background()

	orgID := createOrg(t, f.orgSvc, admin.ID, "Harvest Church")
	if _, err := f.orgSvc.JoinOrganization(ctx, orgID, moderator.ID); err != nil {
		t.Fatalf("JoinOrganization: %v", err)
	}
	modRec, err := f.members.FindByOrganizationAndUser(ctx, orgID, moderator.ID)
	if err != nil || modRec == nil {
		t.Fatalf("membership lookup: %v, %v", modRec, err)
	}
	if _, err := f.orgSvc.UpdateMemberRole(ctx, orgID, modRec.ID, db_models.OrganizationRoleModerator, admin.ID); err != nil {
		t.Fatalf("promote: %v", err)
	}

	created, err := f.svc.CreateEvent(ctx, moderator.ID, request_models.CreateEventRequest{
		OrganizationID: &orgID,
		Title:          "Worship night",
		Description:    "An evening of praise",
		EventType:      db_models.EventTypeWorshipNight,
		LocationName:   "Main sanctuary",
		EventDate:      nextWeek(),
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	eventID := mustParseUUID(t, created.ID)

	// The org admin may edit and delete an event another member created.
	title := "Worship and prayer night"
	if _, err := f.svc.UpdateEvent(ctx, eventID, admin.ID, request_models.UpdateEventRequest{Title: &title}); err != nil {
		t.Errorf("admin update: %v", err)
	}
	if err := f.svc.DeleteEvent(ctx, eventID, admin.ID); err != nil {
		t.Errorf("admin delete: %v", err)
	}
}

func TestStandaloneEventCreatorOnly(t *testing.T) {
	f := newEventFixture()
	creator := f.users.addUser("paul")
	stranger := f.users.addUser("demas")
	ctx := context.Background()

	created, err := f.svc.CreateEvent(ctx, creator.ID, request_models.CreateEventRequest{
		Title:        "Neighborhood prayer walk",
		Description:  "Meet at the corner",
		EventType:    db_models.EventTypePrayerMeeting,
		LocationName: "Oak Street",
		EventDate:    nextWeek(),
	})
	if err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	eventID := mustParseUUID(t, created.ID)

	if err := f.svc.DeleteEvent(ctx, eventID, stranger.ID); !errors.Is(err, utils.ErrForbidden) {
		t.Errorf("stranger delete: got %v, want ErrForbidden", err)
	}
	if err := f.svc.DeleteEvent(ctx, eventID, creator.ID); err != nil {
		t.Errorf("creator delete: %v", err)
	}
	if err := f.svc.DeleteEvent(ctx, eventID, creator.ID); !errors.Is(err, utils.ErrEventNotFound) {
		t.Errorf("delete twice: got %v, want ErrEventNotFound", err)
	}
}

func TestFindNearbyEventsAnnotatesDistance(t *testing.T) {
	f := newEventFixture()
	creator := f.users.addUser("paul")
	ctx := context.Background()

	nyLat, nyLng := 40.7128, -74.0060
	laLat, laLng := 34.0522, -118.2437

	if _, err := f.svc.CreateEvent(ctx, creator.ID, request_models.CreateEventRequest{
		Title:        "Manhattan study",
		Description:  "Close by",
		EventType:    db_models.EventTypeBibleStudy,
		LocationName: "Midtown",
		Latitude:     &nyLat,
		Longitude:    &nyLng,
		EventDate:    nextWeek(),
	}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	if _, err := f.svc.CreateEvent(ctx, creator.ID, request_models.CreateEventRequest{
		Title:        "West coast outreach",
		Description:  "Far away",
		EventType:    db_models.EventTypeEvangelisticOutreach,
		LocationName: "Downtown LA",
		Latitude:     &laLat,
		Longitude:    &laLng,
		EventDate:    nextWeek(),
	}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	// Default radius, centered on New York: only the Manhattan event.
	nearby, err := f.svc.FindNearbyEvents(ctx, request_models.SearchNearbyEventsRequest{
		Latitude:  nyLat,
		Longitude: nyLng,
	})
	if err != nil {
		t.Fatalf("FindNearbyEvents: %v", err)
	}
	if len(nearby) != 1 {
		t.Fatalf("nearby = %d events, want 1", len(nearby))
	}
	if nearby[0].DistanceKm == nil {
		t.Fatal("DistanceKm not annotated")
	}
	if *nearby[0].DistanceKm > 1 {
		t.Errorf("DistanceKm = %f, want near 0", *nearby[0].DistanceKm)
	}
}

func TestFindNearbyEventsFiltersByType(t *testing.T) {
	f := newEventFixture()
	creator := f.users.addUser("paul")
	ctx := context.Background()

	lat, lng := 40.7128, -74.0060
	for _, et := range []string{db_models.EventTypeBibleStudy, db_models.EventTypeWorshipNight} {
		if _, err := f.svc.CreateEvent(ctx, creator.ID, request_models.CreateEventRequest{
			Title:        et,
			Description:  "Nearby",
			EventType:    et,
			LocationName: "Midtown",
			Latitude:     &lat,
			Longitude:    &lng,
			EventDate:    nextWeek(),
		}); err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
	}

	nearby, err := f.svc.FindNearbyEvents(ctx, request_models.SearchNearbyEventsRequest{
		Latitude:  lat,
		Longitude: lng,
		EventType: db_models.EventTypeWorshipNight,
	})
	if err != nil {
		t.Fatalf("FindNearbyEvents: %v", err)
	}
	if len(nearby) != 1 || nearby[0].EventType != db_models.EventTypeWorshipNight {
		t.Errorf("nearby = %+v, want only the worship night", nearby)
	}
}

func TestPastEventsExcludedFromUpcoming(t *testing.T) {
	f := newEventFixture()
	creator := f.users.addUser("paul")
	ctx := context.Background()

	past := &db_models.Event{
		CreatedByID:  creator.ID,
		Title:        "Last month's meeting",
		Description:  "Already happened",
		EventType:    db_models.EventTypePrayerMeeting,
		LocationName: "Chapel",
		EventDate:    time.Now().Add(-30 * 24 * time.Hour),
	}
	if err := f.events.Insert(ctx, past); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := f.svc.CreateEvent(ctx, creator.ID, request_models.CreateEventRequest{
		Title:        "Next month's meeting",
		Description:  "Still ahead",
		EventType:    db_models.EventTypePrayerMeeting,
		LocationName: "Chapel",
		EventDate:    nextWeek(),
	}); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	upcoming, err := f.svc.GetUpcomingEvents(ctx)
	if err != nil {
		t.Fatalf("GetUpcomingEvents: %v", err)
	}
	if len(upcoming) != 1 || upcoming[0].Title != "Next month's meeting" {
		t.Errorf("upcoming = %+v, want only the future event", upcoming)
	}
}
