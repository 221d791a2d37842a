package team

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	if err := db.AutoMigrate(&Team{}); err != nil {
		t.Fatalf("automigrate failed: %v", err)
	}
	return db
}

func TestCreateAndGetTeam(t *testing.T) {
	repo := NewTeamRepository(newTestDB(t))

	created := Team{Name: "Strikers"}
	if err := repo.CreateTeam(&created); err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}

	byID, err := repo.GetTeamByID(created.ID)
	if err != nil {
		t.Fatalf("GetTeamByID: %v", err)
	}
	if byID == nil || byID.Name != "Strikers" {
		t.Errorf("GetTeamByID = %+v", byID)
	}

	byName, err := repo.GetTeamByName("Strikers")
	if err != nil {
		t.Fatalf("GetTeamByName: %v", err)
	}
	if byName == nil || byName.ID != created.ID {
		t.Errorf("GetTeamByName = %+v", byName)
	}
}

func TestGetTeamMissing(t *testing.T) {
	repo := NewTeamRepository(newTestDB(t))

	byID, err := repo.GetTeamByID(42)
	if err != nil || byID != nil {
		t.Errorf("GetTeamByID(42) = (%+v, %v), want (nil, nil)", byID, err)
	}

	byName, err := repo.GetTeamByName("Ghosts")
	if err != nil || byName != nil {
		t.Errorf("GetTeamByName = (%+v, %v), want (nil, nil)", byName, err)
	}
}

func TestDuplicateTeamNameRejected(t *testing.T) {
	repo := NewTeamRepository(newTestDB(t))

	if err := repo.CreateTeam(&Team{Name: "Strikers"}); err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}
	if err := repo.CreateTeam(&Team{Name: "Strikers"}); err == nil {
		t.Error("expected unique constraint violation for duplicate team name")
	}
}

func TestGetAllTeamsPagination(t *testing.T) {
	repo := NewTeamRepository(newTestDB(t))

	for i := 1; i <= 5; i++ {
		if err := repo.CreateTeam(&Team{Name: fmt.Sprintf("Team %d", i)}); err != nil {
			t.Fatalf("CreateTeam #%d: %v", i, err)
		}
	}

	page1, total, err := repo.GetAllTeams(1, 2)
	if err != nil {
		t.Fatalf("GetAllTeams: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if len(page1) != 2 {
		t.Errorf("page 1 size = %d, want 2", len(page1))
	}

	page3, _, err := repo.GetAllTeams(3, 2)
	if err != nil {
		t.Fatalf("GetAllTeams page 3: %v", err)
	}
	if len(page3) != 1 {
		t.Errorf("page 3 size = %d, want 1", len(page3))
	}
}

func TestDeleteTeam(t *testing.T) {
	repo := NewTeamRepository(newTestDB(t))

	created := Team{Name: "Strikers"}
	if err := repo.CreateTeam(&created); err != nil {
		t.Fatalf("CreateTeam: %v", err)
	}
	if err := repo.DeleteTeam(created.ID); err != nil {
		t.Fatalf("DeleteTeam: %v", err)
	}

	gone, err := repo.GetTeamByID(created.ID)
	if err != nil || gone != nil {
		t.Errorf("after delete: (%+v, %v), want (nil, nil)", gone, err)
	}
}
