package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/skulk0156/EMS-backend/internal/model"
	bizerrors "github.com/skulk0156/EMS-backend/pkg/errors"
)

type fakeTeamStore struct {
	mu     sync.Mutex
	teams  map[int64]*model.Team
	nextID int64
}

func newFakeTeamStore() *fakeTeamStore {
	return &fakeTeamStore{teams: map[int64]*model.Team{}}
}

func (f *fakeTeamStore) Create(_ context.Context, team *model.Team) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextID++
	team.ID = f.nextID
	copied := *team
	f.teams[team.ID] = &copied
	return nil
}

func (f *fakeTeamStore) GetByID(_ context.Context, id int64) (*model.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if t, ok := f.teams[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTeamStore) List(_ context.Context) ([]model.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.Team
	for _, t := range f.teams {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTeamStore) ListVisible(_ context.Context, userID int64) ([]model.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.Team
	for _, t := range f.teams {
		if t.LeadID != nil && *t.LeadID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (f *fakeTeamStore) Update(_ context.Context, id int64, updates map[string]interface{}) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, ok := f.teams[id]
	if !ok {
		return 0, nil
	}
	if v, ok := updates["name"]; ok {
		t.Name = v.(string)
	}
	return 1, nil
}

func (f *fakeTeamStore) Delete(_ context.Context, id int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.teams[id]; !ok {
		return 0, nil
	}
	delete(f.teams, id)
	return 1, nil
}

// fakeMemberStore 记录成员的 teamId 指派
type fakeMemberStore struct {
	mu      sync.Mutex
	members map[int64]*int64 // userID -> teamID
}

func newFakeMemberStore(userIDs ...int64) *fakeMemberStore {
	m := &fakeMemberStore{members: map[int64]*int64{}}
	for _, id := range userIDs {
		m.members[id] = nil
	}
	return m
}

func (f *fakeMemberStore) ListByTeam(_ context.Context, teamID int64) ([]model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []model.User
	for userID, tid := range f.members {
		if tid != nil && *tid == teamID {
			u := model.User{TeamID: tid}
			u.ID = userID
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeMemberStore) AssignTeam(_ context.Context, userIDs []int64, teamID *int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, id := range userIDs {
		f.members[id] = teamID
	}
	return nil
}

func TestCreateTeamAssignsMembers(t *testing.T) {
	store := newFakeTeamStore()
	members := newFakeMemberStore(1, 2, 3)
	svc := NewTeamService(store, members)

	team, err := svc.Create(context.Background(), model.CreateTeamRequest{
		Name:      "Platform",
		MemberIDs: []int64{1, 2},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	assigned, _ := members.ListByTeam(context.Background(), team.ID)
	if len(assigned) != 2 {
		t.Errorf("assigned %d members, want 2", len(assigned))
	}
	if members.members[3] != nil {
		t.Error("user 3 must stay unassigned")
	}
}

func TestGetTeamIncludesMembers(t *testing.T) {
	store := newFakeTeamStore()
	members := newFakeMemberStore(1, 2)
	svc := NewTeamService(store, members)
	ctx := context.Background()

	team, err := svc.Create(ctx, model.CreateTeamRequest{Name: "Platform", MemberIDs: []int64{1}})
	if err != nil {
		t.Fatal(err)
	}

	got, err := svc.Get(ctx, team.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Team.Name != "Platform" || len(got.Members) != 1 {
		t.Errorf("got %+v, want Platform with 1 member", got)
	}
}

func TestGetUnknownTeam(t *testing.T) {
	svc := NewTeamService(newFakeTeamStore(), newFakeMemberStore())

	_, err := svc.Get(context.Background(), 99)
	if !errors.Is(err, bizerrors.TeamNotFound) {
		t.Fatalf("error = %v, want TeamNotFound", err)
	}
}

func TestListTeamsByRole(t *testing.T) {
	store := newFakeTeamStore()
	svc := NewTeamService(store, newFakeMemberStore())
	ctx := context.Background()

	lead := int64(7)
	if _, err := svc.Create(ctx, model.CreateTeamRequest{Name: "Platform", LeadID: &lead}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Create(ctx, model.CreateTeamRequest{Name: "Mobile"}); err != nil {
		t.Fatal(err)
	}

	all, err := svc.List(ctx, 7, model.RoleHR)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Errorf("hr sees %d teams, want 2", len(all))
	}

	visible, err := svc.List(ctx, 7, model.RoleEmployee)
	if err != nil {
		t.Fatal(err)
	}
	if len(visible) != 1 || visible[0].Name != "Platform" {
		t.Errorf("employee 7 sees %+v, want only Platform", visible)
	}
}

func TestDeleteTeamReleasesMembers(t *testing.T) {
	store := newFakeTeamStore()
	members := newFakeMemberStore(1, 2)
	svc := NewTeamService(store, members)
	ctx := context.Background()

	team, err := svc.Create(ctx, model.CreateTeamRequest{Name: "Platform", MemberIDs: []int64{1, 2}})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(ctx, team.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	for userID, tid := range members.members {
		if tid != nil {
			t.Errorf("user %d still assigned to team %d after delete", userID, *tid)
		}
	}

	if _, err := svc.Get(ctx, team.ID); !errors.Is(err, bizerrors.TeamNotFound) {
		t.Errorf("Get after delete = %v, want TeamNotFound", err)
	}
}
