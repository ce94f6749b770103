package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"resource-planner-backend/internal/config"
	"resource-planner-backend/internal/database"
	"resource-planner-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Color       string `yaml:"color,omitempty"`
	LeadEmail   string `yaml:"lead_email,omitempty"`
}

type MemberData struct {
	Name        string   `yaml:"name"`
	Email       string   `yaml:"email"`
	Role        string   `yaml:"role,omitempty"`
	Department  string   `yaml:"department,omitempty"`
	Capacity    float64  `yaml:"capacity"`
	Skills      []string `yaml:"skills,omitempty"`
	AvatarColor string   `yaml:"avatar_color,omitempty"`
	TeamName    string   `yaml:"team_name,omitempty"`
}

type AllocationData struct {
	Title          string   `yaml:"title"`
	Description    string   `yaml:"description,omitempty"`
	AssigneeEmail  string   `yaml:"assignee_email"`
	TeamName       string   `yaml:"team_name,omitempty"`
	Priority       string   `yaml:"priority,omitempty"`
	Status         string   `yaml:"status,omitempty"`
	EstimatedHours float64  `yaml:"estimated_hours,omitempty"`
	Tags           []string `yaml:"tags,omitempty"`
	ProjectCode    string   `yaml:"project_code,omitempty"`
	Budget         float64  `yaml:"budget,omitempty"`
}

type InvitationData struct {
	Email string `yaml:"email"`
}

// File structures
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type MembersFile struct {
	Members []MemberData `yaml:"members"`
}

type AllocationsFile struct {
	Allocations []AllocationData `yaml:"allocations"`
}

type InvitationsFile struct {
	Invitations []InvitationData `yaml:"invitations"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	members, err := loadMembers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load members: %w", err)
	}

	allocations, err := loadAllocations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load allocations: %w", err)
	}

	invitations, err := loadInvitations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load invitations: %w", err)
	}

	// Create teams first, members reference them by name
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("Teams: %d created, %d total", teamCreated, len(teams))

	// Create members
	memberMap := make(map[string]*models.Member)
	memberCreated := 0
	for _, memberData := range members {
		member, created, err := createMember(db, memberData, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create member %s: %w", memberData.Name, err)
		}
		memberMap[memberData.Email] = member
		if created {
			memberCreated++
		}
	}
	log.Printf("Members: %d created, %d total", memberCreated, len(members))

	// Wire team leads now that both sides exist
	leadsWired := 0
	for _, teamData := range teams {
		if teamData.LeadEmail == "" {
			continue
		}
		wired, err := wireTeamLead(db, teamMap[teamData.Name], memberMap[teamData.LeadEmail])
		if err != nil {
			log.Printf("Warning: failed to wire lead for team %s: %v", teamData.Name, err)
			continue
		}
		if wired {
			leadsWired++
		}
	}
	log.Printf("Team leads: %d wired", leadsWired)

	// Create allocations
	allocationCreated := 0
	for _, allocationData := range allocations {
		_, created, err := createAllocation(db, allocationData, memberMap, teamMap)
		if err != nil {
			log.Printf("Warning: failed to create allocation %s: %v", allocationData.Title, err)
			continue // Continue with other allocations
		}
		if created {
			allocationCreated++
		}
	}
	log.Printf("Allocations: %d created, %d total", allocationCreated, len(allocations))

	// Create invitations
	invitationCreated := 0
	for _, invitationData := range invitations {
		created, err := createInvitation(db, invitationData)
		if err != nil {
			log.Printf("Warning: failed to create invitation %s: %v", invitationData.Email, err)
			continue
		}
		if created {
			invitationCreated++
		}
	}
	log.Printf("Invitations: %d created, %d total", invitationCreated, len(invitations))

	return nil
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadMembers(dataDir string) ([]MemberData, error) {
	var allMembers []MemberData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "members") {
			var file MembersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allMembers = append(allMembers, file.Members...)
		}
		return nil
	})

	return allMembers, err
}

func loadAllocations(dataDir string) ([]AllocationData, error) {
	var allAllocations []AllocationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "allocations") {
			var file AllocationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allAllocations = append(allAllocations, file.Allocations...)
		}
		return nil
	})

	return allAllocations, err
}

func loadInvitations(dataDir string) ([]InvitationData, error) {
	var allInvitations []InvitationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "invitations") {
			var file InvitationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allInvitations = append(allInvitations, file.Invitations...)
		}
		return nil
	})

	return allInvitations, err
}

func createTeam(db *gorm.DB, teamData TeamData) (*models.Team, bool, error) {
	var team models.Team
	if err := db.Where("name = ?", teamData.Name).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			color := teamData.Color
			if color == "" {
				color = "#3B82F6"
			}

			team = models.Team{
				Name:        teamData.Name,
				Description: teamData.Description,
				Color:       color,
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}
			return &team, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query team: %w", err)
		}
	}

	return &team, false, nil // created = false (existing)
}

func createMember(db *gorm.DB, memberData MemberData, teamMap map[string]*models.Team) (*models.Member, bool, error) {
	var teamID *uuid.UUID
	if memberData.TeamName != "" {
		if team := teamMap[memberData.TeamName]; team != nil {
			teamID = &team.ID
		} else {
			log.Printf("Warning: team %s not found for member %s", memberData.TeamName, memberData.Name)
		}
	}

	var member models.Member
	if err := db.Where("email = ?", memberData.Email).First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			capacity := memberData.Capacity
			if capacity <= 0 {
				capacity = 40
			}
			avatarColor := memberData.AvatarColor
			if avatarColor == "" {
				avatarColor = "#6366F1"
			}

			member = models.Member{
				TeamID:      teamID,
				Name:        memberData.Name,
				Email:       memberData.Email,
				Role:        memberData.Role,
				Department:  memberData.Department,
				Capacity:    capacity,
				Skills:      memberData.Skills,
				AvatarColor: avatarColor,
			}

			if err := db.Create(&member).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create member: %w", err)
			}
			return &member, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query member: %w", err)
		}
	}

	return &member, false, nil // created = false (existing)
}

// wireTeamLead points the team at its lead and flags the member. Skipped when
// the lead is not part of the team.
func wireTeamLead(db *gorm.DB, team *models.Team, lead *models.Member) (bool, error) {
	if team == nil || lead == nil {
		return false, fmt.Errorf("team or lead member missing")
	}
	if lead.TeamID == nil || *lead.TeamID != team.ID {
		return false, fmt.Errorf("lead %s is not a member of team %s", lead.Email, team.Name)
	}
	if team.LeadID != nil && *team.LeadID == lead.ID {
		return false, nil // already wired
	}

	if err := db.Model(team).Update("lead_id", lead.ID).Error; err != nil {
		return false, err
	}
	if err := db.Model(lead).Update("is_team_lead", true).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createAllocation(db *gorm.DB, allocationData AllocationData, memberMap map[string]*models.Member, teamMap map[string]*models.Team) (*models.Allocation, bool, error) {
	assignee := memberMap[allocationData.AssigneeEmail]
	if assignee == nil {
		return nil, false, fmt.Errorf("assignee %s not found for allocation %s", allocationData.AssigneeEmail, allocationData.Title)
	}

	var teamID *uuid.UUID
	if allocationData.TeamName != "" {
		if team := teamMap[allocationData.TeamName]; team != nil {
			teamID = &team.ID
		} else {
			log.Printf("Warning: team %s not found for allocation %s", allocationData.TeamName, allocationData.Title)
		}
	}

	var allocation models.Allocation
	if err := db.Where("title = ? AND assignee_id = ?", allocationData.Title, assignee.ID).First(&allocation).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			priority := models.PriorityMedium
			if allocationData.Priority != "" {
				priority = models.AllocationPriority(allocationData.Priority)
				if !priority.IsValid() {
					return nil, false, fmt.Errorf("invalid priority %q", allocationData.Priority)
				}
			}

			status := models.StatusTodo
			if allocationData.Status != "" {
				status = models.AllocationStatus(allocationData.Status)
				if !status.IsValid() {
					return nil, false, fmt.Errorf("invalid status %q", allocationData.Status)
				}
			}

			allocation = models.Allocation{
				Title:          allocationData.Title,
				Description:    allocationData.Description,
				AssigneeID:     assignee.ID,
				TeamID:         teamID,
				Priority:       priority,
				Status:         status,
				EstimatedHours: allocationData.EstimatedHours,
				Tags:           allocationData.Tags,
				ProjectCode:    allocationData.ProjectCode,
				Budget:         allocationData.Budget,
			}

			if err := db.Create(&allocation).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create allocation: %w", err)
			}
			return &allocation, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query allocation: %w", err)
		}
	}

	return &allocation, false, nil // created = false (existing)
}

func createInvitation(db *gorm.DB, invitationData InvitationData) (bool, error) {
	var invitation models.Invitation
	if err := db.Where("email = ?", invitationData.Email).First(&invitation).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			invitation = models.Invitation{Email: invitationData.Email}
			if err := db.Create(&invitation).Error; err != nil {
				return false, fmt.Errorf("failed to create invitation: %w", err)
			}
			return true, nil // created = true
		}
		return false, fmt.Errorf("failed to query invitation: %w", err)
	}

	return false, nil // created = false (existing)
}
