package database

import (
	"fmt"
	"time"

	"resource-planner-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Demo credentials for local development only.
const (
	DemoAdminEmail    = "admin@company.com"
	DemoAdminPassword = "admin123"
)

// SeedDemoData loads the sample dataset when the database is empty: three
// members, two allocations and the demo admin account. A non-empty members
// or users table leaves the dataset untouched.
func SeedDemoData(db *gorm.DB) error {
	var memberCount, userCount int64
	if err := db.Model(&models.Member{}).Count(&memberCount).Error; err != nil {
		return fmt.Errorf("count members: %w", err)
	}
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if memberCount == 0 {
			if err := seedMembers(tx); err != nil {
				return err
			}
		}
		if userCount == 0 {
			if err := seedAdminUser(tx); err != nil {
				return err
			}
		}
		return nil
	})
}

func seedMembers(tx *gorm.DB) error {
	members := []models.Member{
		{
			Name:        "John Smith",
			Email:       "john.smith@company.com",
			Role:        "Senior Developer",
			Department:  "Engineering",
			Capacity:    40,
			Skills:      []string{"React", "TypeScript", "Node.js"},
			AvatarColor: "#3B82F6",
		},
		{
			Name:        "Sarah Johnson",
			Email:       "sarah.j@company.com",
			Role:        "UX Designer",
			Department:  "Design",
			Capacity:    40,
			Skills:      []string{"Figma", "UI/UX", "Prototyping"},
			AvatarColor: "#8B5CF6",
		},
		{
			Name:        "Mike Chen",
			Email:       "mike.chen@company.com",
			Role:        "Product Manager",
			Department:  "Product",
			Capacity:    40,
			Skills:      []string{"Product Strategy", "Agile", "Analytics"},
			AvatarColor: "#10B981",
		},
	}
	if err := tx.Create(&members).Error; err != nil {
		return fmt.Errorf("seed members: %w", err)
	}

	week := func(days int) *time.Time {
		t := time.Now().AddDate(0, 0, days)
		return &t
	}
	allocations := []models.Allocation{
		{
			Title:          "Implement user authentication",
			Description:    "Create login/logout functionality with JWT tokens",
			AssigneeID:     members[0].ID,
			Priority:       models.PriorityHigh,
			Status:         models.StatusInProgress,
			EstimatedHours: 16,
			ActualHours:    8,
			DueDate:        week(7),
			Tags:           []string{"Backend", "Security"},
			ProjectCode:    "WEB",
		},
		{
			Title:          "Design new dashboard layout",
			Description:    "Create mockups and prototypes for the new admin dashboard",
			AssigneeID:     members[1].ID,
			Priority:       models.PriorityMedium,
			Status:         models.StatusTodo,
			EstimatedHours: 12,
			ActualHours:    0,
			DueDate:        week(10),
			Tags:           []string{"Design", "UI"},
			ProjectCode:    "ADM",
		},
	}
	if err := tx.Create(&allocations).Error; err != nil {
		return fmt.Errorf("seed allocations: %w", err)
	}
	return nil
}

func seedAdminUser(tx *gorm.DB) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo admin password: %w", err)
	}
	now := time.Now()
	admin := models.User{
		Email:        DemoAdminEmail,
		PasswordHash: string(hash),
		IsInvited:    true,
		IsAdmin:      true,
		InvitedAt:    &now,
	}
	if err := tx.Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	return nil
}
