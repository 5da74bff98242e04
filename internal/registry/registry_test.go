package registry_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"educonnect/backend/internal/database"
	"educonnect/backend/internal/models"
	"educonnect/backend/internal/registry"

	"github.com/google/uuid"
)

type recorder struct {
	mu    sync.Mutex
	notes []models.Notification
}

func (r *recorder) Notify(n models.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
}

func (r *recorder) types() []models.NotificationType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.NotificationType, len(r.notes))
	for i, n := range r.notes {
		out[i] = n.Type
	}
	return out
}

func newTestRegistry(t *testing.T) (*registry.Registry, *recorder) {
	t.Helper()
	db, err := database.Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("database.Open() error: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("database.Migrate() error: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	rec := &recorder{}
	return registry.New(db, rec), rec
}

func profileInput(name string) registry.ProfileInput {
	return registry.ProfileInput{
		FullName:           name,
		IPFSProfilePicture: "ipfs://" + name,
		Title:              "Developer",
		TechStack:          []string{"Go", "Solidity"},
		About:              "About " + name,
	}
}

func mustCreateProfile(t *testing.T, reg *registry.Registry, identity string) {
	t.Helper()
	if _, err := reg.CreateProfile(context.Background(), identity, profileInput(identity)); err != nil {
		t.Fatalf("CreateProfile(%q) error: %v", identity, err)
	}
}

func snapshotJSON(t *testing.T, reg *registry.Registry) string {
	t.Helper()
	state, err := reg.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	data, err := json.Marshal(state)
	if err != nil {
		t.Fatalf("json.Marshal(state) error: %v", err)
	}
	return string(data)
}

// expectRejected runs call and checks that it fails with want and leaves the
// registries unchanged.
func expectRejected(t *testing.T, reg *registry.Registry, want error, call func() error) {
	t.Helper()
	before := snapshotJSON(t, reg)
	err := call()
	if !errors.Is(err, want) {
		t.Fatalf("error = %v, want %v", err, want)
	}
	if after := snapshotJSON(t, reg); after != before {
		t.Errorf("state changed by rejected call\nbefore: %s\nafter:  %s", before, after)
	}
}

func TestCreateProfile(t *testing.T) {
	reg, rec := newTestRegistry(t)
	ctx := context.Background()

	in := registry.ProfileInput{
		FullName:           "John Doe",
		IPFSProfilePicture: "ipfs://QmTest",
		Title:              "Software Engineer",
		TechStack:          []string{"Solidity", "JavaScript", "Python", "Solidity"},
		About:              "Blockchain Developer",
	}
	if _, err := reg.CreateProfile(ctx, "alice", in); err != nil {
		t.Fatalf("CreateProfile() error: %v", err)
	}

	p, err := reg.GetProfile(ctx, "alice")
	if err != nil {
		t.Fatalf("GetProfile() error: %v", err)
	}
	if p.Owner != "alice" {
		t.Errorf("Owner = %q, want %q", p.Owner, "alice")
	}
	if p.FullName != in.FullName || p.IPFSProfilePicture != in.IPFSProfilePicture || p.Title != in.Title || p.About != in.About {
		t.Errorf("profile = %+v, want fields of %+v", p, in)
	}
	if len(p.TechStack) != len(in.TechStack) {
		t.Fatalf("TechStack = %v, want %v", p.TechStack, in.TechStack)
	}
	for i := range in.TechStack {
		if p.TechStack[i] != in.TechStack[i] {
			t.Errorf("TechStack[%d] = %q, want %q", i, p.TechStack[i], in.TechStack[i])
		}
	}

	if got := rec.types(); len(got) != 1 || got[0] != models.NotificationProfileCreated {
		t.Errorf("notifications = %v, want [%s]", got, models.NotificationProfileCreated)
	}
}

func TestCreateProfileTwiceFails(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	mustCreateProfile(t, reg, "alice")

	expectRejected(t, reg, registry.ErrAlreadyExists, func() error {
		_, err := reg.CreateProfile(ctx, "alice", profileInput("someone else"))
		return err
	})

	p, err := reg.GetProfile(ctx, "alice")
	if err != nil {
		t.Fatalf("GetProfile() error: %v", err)
	}
	if p.FullName != "alice" {
		t.Errorf("FullName = %q, want first submission %q", p.FullName, "alice")
	}
	if registry.ErrAlreadyExists.Error() != "Profile already exists" {
		t.Errorf("reason = %q", registry.ErrAlreadyExists.Error())
	}
}

func TestCreateProfileWithoutIdentity(t *testing.T) {
	reg, _ := newTestRegistry(t)
	expectRejected(t, reg, registry.ErrMissingIdentity, func() error {
		_, err := reg.CreateProfile(context.Background(), "", profileInput("nobody"))
		return err
	})
}

func TestGetProfileUnknownReturnsZero(t *testing.T) {
	reg, _ := newTestRegistry(t)

	p, err := reg.GetProfile(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("GetProfile() error: %v", err)
	}
	if p.Exists() || p.FullName != "" || len(p.TechStack) != 0 || p.FriendCount != 0 {
		t.Errorf("GetProfile(unknown) = %+v, want zero value", p)
	}

	ok, err := reg.HasProfile(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("HasProfile() error: %v", err)
	}
	if ok {
		t.Error("HasProfile(ghost) = true, want false")
	}
}

func TestSendAndAcceptFriendRequest(t *testing.T) {
	reg, rec := newTestRegistry(t)
	ctx := context.Background()
	mustCreateProfile(t, reg, "alice")
	mustCreateProfile(t, reg, "bob")

	if err := reg.SendFriendRequest(ctx, "alice", "bob"); err != nil {
		t.Fatalf("SendFriendRequest() error: %v", err)
	}

	// Nothing is confirmed while the request is pending.
	for _, id := range []string{"alice", "bob"} {
		n, err := reg.GetFriendCount(ctx, id)
		if err != nil {
			t.Fatalf("GetFriendCount(%q) error: %v", id, err)
		}
		if n != 0 {
			t.Errorf("GetFriendCount(%q) = %d before accept, want 0", id, n)
		}
	}
	if ok, _ := reg.CheckFriendship(ctx, "alice", "bob"); ok {
		t.Error("CheckFriendship before accept = true, want false")
	}

	if err := reg.AcceptFriendRequest(ctx, "bob", "alice"); err != nil {
		t.Fatalf("AcceptFriendRequest() error: %v", err)
	}

	for _, pair := range [][2]string{{"alice", "bob"}, {"bob", "alice"}} {
		ok, err := reg.CheckFriendship(ctx, pair[0], pair[1])
		if err != nil {
			t.Fatalf("CheckFriendship() error: %v", err)
		}
		if !ok {
			t.Errorf("CheckFriendship(%q, %q) = false, want true", pair[0], pair[1])
		}
	}
	for _, id := range []string{"alice", "bob"} {
		n, err := reg.GetFriendCount(ctx, id)
		if err != nil {
			t.Fatalf("GetFriendCount(%q) error: %v", id, err)
		}
		if n != 1 {
			t.Errorf("GetFriendCount(%q) = %d, want 1", id, n)
		}
	}

	edge, err := reg.Relation(ctx, "bob", "alice")
	if err != nil {
		t.Fatalf("Relation() error: %v", err)
	}
	if edge == nil || edge.Status != models.StatusAccepted || edge.AcceptedAt == nil {
		t.Errorf("Relation() = %+v, want accepted edge with AcceptedAt", edge)
	}

	want := []models.NotificationType{
		models.NotificationProfileCreated,
		models.NotificationProfileCreated,
		models.NotificationFriendRequestSent,
		models.NotificationFriendRequestAccepted,
	}
	got := rec.types()
	if len(got) != len(want) {
		t.Fatalf("notifications = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("notification[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestSendFriendRequestRejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		setup     func(t *testing.T, reg *registry.Registry)
		caller    string
		recipient string
		want      error
	}{
		{
			name:      "caller without profile",
			setup:     func(t *testing.T, reg *registry.Registry) { mustCreateProfile(t, reg, "bob") },
			caller:    "alice",
			recipient: "bob",
			want:      registry.ErrNotRegistered,
		},
		{
			name:      "neither side registered",
			setup:     func(t *testing.T, reg *registry.Registry) {},
			caller:    "alice",
			recipient: "bob",
			want:      registry.ErrNotRegistered,
		},
		{
			name:      "recipient without profile",
			setup:     func(t *testing.T, reg *registry.Registry) { mustCreateProfile(t, reg, "alice") },
			caller:    "alice",
			recipient: "carol",
			want:      registry.ErrRecipientNotFound,
		},
		{
			name:      "request to self",
			setup:     func(t *testing.T, reg *registry.Registry) { mustCreateProfile(t, reg, "alice") },
			caller:    "alice",
			recipient: "alice",
			want:      registry.ErrSelfRequest,
		},
		{
			name: "duplicate request",
			setup: func(t *testing.T, reg *registry.Registry) {
				mustCreateProfile(t, reg, "alice")
				mustCreateProfile(t, reg, "bob")
				if err := reg.SendFriendRequest(ctx, "alice", "bob"); err != nil {
					t.Fatal(err)
				}
			},
			caller:    "alice",
			recipient: "bob",
			want:      registry.ErrDuplicateRequest,
		},
		{
			name: "reverse request while pending",
			setup: func(t *testing.T, reg *registry.Registry) {
				mustCreateProfile(t, reg, "alice")
				mustCreateProfile(t, reg, "bob")
				if err := reg.SendFriendRequest(ctx, "alice", "bob"); err != nil {
					t.Fatal(err)
				}
			},
			caller:    "bob",
			recipient: "alice",
			want:      registry.ErrReverseRequestPending,
		},
		{
			name: "already friends",
			setup: func(t *testing.T, reg *registry.Registry) {
				mustCreateProfile(t, reg, "alice")
				mustCreateProfile(t, reg, "bob")
				if err := reg.SendFriendRequest(ctx, "alice", "bob"); err != nil {
					t.Fatal(err)
				}
				if err := reg.AcceptFriendRequest(ctx, "bob", "alice"); err != nil {
					t.Fatal(err)
				}
			},
			caller:    "bob",
			recipient: "alice",
			want:      registry.ErrAlreadyFriends,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, _ := newTestRegistry(t)
			tt.setup(t, reg)
			expectRejected(t, reg, tt.want, func() error {
				return reg.SendFriendRequest(ctx, tt.caller, tt.recipient)
			})
		})
	}
}

func TestDuplicateRequestClass(t *testing.T) {
	for _, err := range []error{registry.ErrReverseRequestPending, registry.ErrAlreadyFriends} {
		if !errors.Is(err, registry.ErrDuplicateRequest) {
			t.Errorf("errors.Is(%v, ErrDuplicateRequest) = false, want true", err)
		}
		if !registry.IsRejection(err) {
			t.Errorf("IsRejection(%v) = false, want true", err)
		}
	}
	if registry.IsRejection(errors.New("disk on fire")) {
		t.Error("IsRejection(storage error) = true, want false")
	}
}

func TestAcceptFriendRequestRejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		caller    string
		requester string
	}{
		{"no request at all", "bob", "carol"},
		{"requester accepts own request", "alice", "bob"},
		{"accept from self", "bob", "bob"},
		{"unregistered caller", "dave", "alice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg, _ := newTestRegistry(t)
			mustCreateProfile(t, reg, "alice")
			mustCreateProfile(t, reg, "bob")
			mustCreateProfile(t, reg, "carol")
			if err := reg.SendFriendRequest(ctx, "alice", "bob"); err != nil {
				t.Fatal(err)
			}

			expectRejected(t, reg, registry.ErrNoSuchRequest, func() error {
				return reg.AcceptFriendRequest(ctx, tt.caller, tt.requester)
			})
		})
	}
}

func TestAcceptConfirmedPairIsNoOp(t *testing.T) {
	reg, rec := newTestRegistry(t)
	ctx := context.Background()
	mustCreateProfile(t, reg, "alice")
	mustCreateProfile(t, reg, "bob")
	if err := reg.SendFriendRequest(ctx, "alice", "bob"); err != nil {
		t.Fatal(err)
	}
	if err := reg.AcceptFriendRequest(ctx, "bob", "alice"); err != nil {
		t.Fatal(err)
	}

	before := snapshotJSON(t, reg)
	notified := len(rec.types())

	// Either side re-accepting changes nothing.
	if err := reg.AcceptFriendRequest(ctx, "bob", "alice"); err != nil {
		t.Fatalf("re-accept error: %v", err)
	}
	if err := reg.AcceptFriendRequest(ctx, "alice", "bob"); err != nil {
		t.Fatalf("re-accept from requester error: %v", err)
	}

	if after := snapshotJSON(t, reg); after != before {
		t.Errorf("re-accept changed state\nbefore: %s\nafter:  %s", before, after)
	}
	if got := len(rec.types()); got != notified {
		t.Errorf("re-accept emitted %d notifications, want 0", got-notified)
	}
}

func TestFriendCountsAcrossSeveralFriends(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()
	for _, id := range []string{"alice", "bob", "carol", "dave"} {
		mustCreateProfile(t, reg, id)
	}

	for _, friend := range []string{"bob", "carol", "dave"} {
		if err := reg.SendFriendRequest(ctx, friend, "alice"); err != nil {
			t.Fatal(err)
		}
		if err := reg.AcceptFriendRequest(ctx, "alice", friend); err != nil {
			t.Fatal(err)
		}
	}

	want := map[string]uint64{"alice": 3, "bob": 1, "carol": 1, "dave": 1, "nobody": 0}
	for id, n := range want {
		got, err := reg.GetFriendCount(ctx, id)
		if err != nil {
			t.Fatalf("GetFriendCount(%q) error: %v", id, err)
		}
		if got != n {
			t.Errorf("GetFriendCount(%q) = %d, want %d", id, got, n)
		}
	}
	if ok, _ := reg.CheckFriendship(ctx, "bob", "carol"); ok {
		t.Error("CheckFriendship(bob, carol) = true, want false")
	}
}

func TestListRelations(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()
	for _, id := range []string{"alice", "bob", "carol", "dave"} {
		mustCreateProfile(t, reg, id)
	}
	// alice -> bob (accepted), carol -> alice (pending), alice -> dave (pending)
	if err := reg.SendFriendRequest(ctx, "alice", "bob"); err != nil {
		t.Fatal(err)
	}
	if err := reg.AcceptFriendRequest(ctx, "bob", "alice"); err != nil {
		t.Fatal(err)
	}
	if err := reg.SendFriendRequest(ctx, "carol", "alice"); err != nil {
		t.Fatal(err)
	}
	if err := reg.SendFriendRequest(ctx, "alice", "dave"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		filter registry.RelationFilter
		want   []string
	}{
		{"all", registry.RelationFilter{}, []string{"bob", "carol", "dave"}},
		{"friends", registry.RelationFilter{Status: models.StatusAccepted}, []string{"bob"}},
		{"incoming pending", registry.RelationFilter{Status: models.StatusPending, Direction: registry.DirectionIncoming}, []string{"carol"}},
		{"outgoing pending", registry.RelationFilter{Status: models.StatusPending, Direction: registry.DirectionOutgoing}, []string{"dave"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relations, err := reg.ListRelations(ctx, "alice", tt.filter)
			if err != nil {
				t.Fatalf("ListRelations() error: %v", err)
			}
			got := map[string]bool{}
			for _, r := range relations {
				got[r.Other("alice")] = true
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ListRelations() others = %v, want %v", got, tt.want)
			}
			for _, id := range tt.want {
				if !got[id] {
					t.Errorf("ListRelations() missing %q", id)
				}
			}
		})
	}
}

func TestCreateEvents(t *testing.T) {
	reg, rec := newTestRegistry(t)
	ctx := context.Background()
	mustCreateProfile(t, reg, "alice")
	mustCreateProfile(t, reg, "bob")

	date := time.Date(2026, 11, 1, 9, 0, 0, 0, time.UTC)
	calls := []struct {
		caller string
		input  registry.EventInput
	}{
		{"alice", registry.EventInput{Name: "Blockchain Workshop", Description: "Learn about blockchain", Date: date}},
		{"bob", registry.EventInput{Name: "Hack Night", Description: "48h", Date: date.Add(24 * time.Hour), IsHackathon: true}},
		// Past dates are accepted.
		{"alice", registry.EventInput{Name: "Retro", Date: date.AddDate(-2, 0, 0)}},
	}
	for i, c := range calls {
		ev, err := reg.CreateEvent(ctx, c.caller, c.input)
		if err != nil {
			t.Fatalf("CreateEvent(%d) error: %v", i, err)
		}
		if ev.Seq != uint64(i) {
			t.Errorf("CreateEvent(%d).Seq = %d, want %d", i, ev.Seq, i)
		}
	}

	count, err := reg.GetEventCount(ctx)
	if err != nil {
		t.Fatalf("GetEventCount() error: %v", err)
	}
	if count != uint64(len(calls)) {
		t.Errorf("GetEventCount() = %d, want %d", count, len(calls))
	}

	for i, c := range calls {
		ev, err := reg.EventAt(ctx, uint64(i))
		if err != nil {
			t.Fatalf("EventAt(%d) error: %v", i, err)
		}
		if ev.Organizer != c.caller {
			t.Errorf("EventAt(%d).Organizer = %q, want %q", i, ev.Organizer, c.caller)
		}
		if ev.Name != c.input.Name || ev.Description != c.input.Description || ev.IsHackathon != c.input.IsHackathon {
			t.Errorf("EventAt(%d) = %+v, want fields of %+v", i, ev, c.input)
		}
		if !ev.Date.Equal(c.input.Date) {
			t.Errorf("EventAt(%d).Date = %v, want %v", i, ev.Date, c.input.Date)
		}
	}

	expectRejected(t, reg, registry.ErrIndexOutOfRange, func() error {
		_, err := reg.EventAt(ctx, uint64(len(calls)))
		return err
	})

	events, err := reg.ListEvents(ctx)
	if err != nil {
		t.Fatalf("ListEvents() error: %v", err)
	}
	if len(events) != len(calls) {
		t.Fatalf("ListEvents() len = %d, want %d", len(events), len(calls))
	}
	for i, ev := range events {
		if ev.Seq != uint64(i) {
			t.Errorf("ListEvents()[%d].Seq = %d", i, ev.Seq)
		}
	}

	created := 0
	for _, typ := range rec.types() {
		if typ == models.NotificationEventCreated {
			created++
		}
	}
	if created != len(calls) {
		t.Errorf("EventCreated notifications = %d, want %d", created, len(calls))
	}
}

func TestCreateEventRequiresProfile(t *testing.T) {
	reg, _ := newTestRegistry(t)
	mustCreateProfile(t, reg, "alice")

	expectRejected(t, reg, registry.ErrNotRegistered, func() error {
		_, err := reg.CreateEvent(context.Background(), "bob", registry.EventInput{Name: "Test Event", Date: time.Now()})
		return err
	})
	if registry.ErrNotRegistered.Error() != "Profile not registered" {
		t.Errorf("reason = %q", registry.ErrNotRegistered.Error())
	}

	count, err := reg.GetEventCount(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("GetEventCount() = %d, want 0", count)
	}
}

func TestThreeEventsScenario(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()
	mustCreateProfile(t, reg, "alice")

	for i := 0; i < 3; i++ {
		if _, err := reg.CreateEvent(ctx, "alice", registry.EventInput{Name: "event", Date: time.Now()}); err != nil {
			t.Fatal(err)
		}
	}

	count, _ := reg.GetEventCount(ctx)
	if count != 3 {
		t.Errorf("GetEventCount() = %d, want 3", count)
	}
	ev, err := reg.EventAt(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if ev.Organizer != "alice" {
		t.Errorf("EventAt(1).Organizer = %q, want alice", ev.Organizer)
	}
	if _, err := reg.EventAt(ctx, 3); !errors.Is(err, registry.ErrIndexOutOfRange) {
		t.Errorf("EventAt(3) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestConcurrentEventCreationKeepsSequenceDense(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()
	mustCreateProfile(t, reg, "alice")

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := reg.CreateEvent(ctx, "alice", registry.EventInput{Name: "parallel", Date: time.Now()})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("CreateEvent() error: %v", err)
		}
	}

	events, err := reg.ListEvents(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != n {
		t.Fatalf("len(events) = %d, want %d", len(events), n)
	}
	for i, ev := range events {
		if ev.Seq != uint64(i) {
			t.Errorf("events[%d].Seq = %d", i, ev.Seq)
		}
	}
}

func TestNotificationLog(t *testing.T) {
	reg, rec := newTestRegistry(t)
	ctx := context.Background()
	mustCreateProfile(t, reg, "alice")
	mustCreateProfile(t, reg, "bob")
	if err := reg.SendFriendRequest(ctx, "alice", "bob"); err != nil {
		t.Fatal(err)
	}

	all, err := reg.NotificationsSince(ctx, 0)
	if err != nil {
		t.Fatalf("NotificationsSince(0) error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len(NotificationsSince(0)) = %d, want 3", len(all))
	}
	for i, n := range all {
		if n.UID == uuid.Nil {
			t.Errorf("notification[%d] has nil UID", i)
		}
		if n.ID != rec.notes[i].ID {
			t.Errorf("notification[%d].ID = %d, broadcast ID = %d", i, n.ID, rec.notes[i].ID)
		}
	}

	last := all[len(all)-1]
	if last.Type != models.NotificationFriendRequestSent || last.Actor != "alice" || last.Subject != "bob" {
		t.Errorf("last notification = %+v", last)
	}
	var payload models.FriendRequestPayload
	if err := json.Unmarshal(last.Payload, &payload); err != nil {
		t.Fatalf("payload decode error: %v", err)
	}
	if payload.From != "alice" || payload.To != "bob" {
		t.Errorf("payload = %+v, want alice -> bob", payload)
	}

	tail, err := reg.NotificationsSince(ctx, all[0].ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(tail) != 2 {
		t.Errorf("len(NotificationsSince(first)) = %d, want 2", len(tail))
	}
}

func TestRejectedCallsDoNotNotify(t *testing.T) {
	reg, rec := newTestRegistry(t)
	ctx := context.Background()
	mustCreateProfile(t, reg, "alice")
	before := len(rec.types())

	reg.CreateProfile(ctx, "alice", profileInput("again"))           //nolint:errcheck
	reg.SendFriendRequest(ctx, "alice", "nobody")                    //nolint:errcheck
	reg.AcceptFriendRequest(ctx, "alice", "nobody")                  //nolint:errcheck
	reg.CreateEvent(ctx, "nobody", registry.EventInput{Name: "nope"}) //nolint:errcheck

	if got := len(rec.types()); got != before {
		t.Errorf("rejected calls emitted %d notifications, want 0", got-before)
	}
}
