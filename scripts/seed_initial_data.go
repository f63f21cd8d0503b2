package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"vacation-manager-backend/internal/config"
	"vacation-manager-backend/internal/database"
	"vacation-manager-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Seed file structures. The seed is the only place the CEO role is ever
// granted; the other roles are derived from the graph built here.

type EmployeeData struct {
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
	Email     string `yaml:"email"`
	Phone     string `yaml:"phone,omitempty"`
	CEO       bool   `yaml:"ceo,omitempty"`
}

type TeamData struct {
	Name         string   `yaml:"name"`
	LeaderEmail  string   `yaml:"leader_email"`
	ProjectName  string   `yaml:"project_name,omitempty"`
	MemberEmails []string `yaml:"member_emails,omitempty"`
}

type ProjectData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type SeedFile struct {
	Employees []EmployeeData `yaml:"employees"`
	Projects  []ProjectData  `yaml:"projects"`
	Teams     []TeamData     `yaml:"teams"`
}

func main() {
	seedPath := flag.String("file", "", "path to the seed file (defaults to SEED_FILE from config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	path := *seedPath
	if path == "" {
		path = cfg.SeedFile
	}

	seed, err := readSeedFile(path)
	if err != nil {
		log.Fatalf("Failed to read seed file: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := loadSeed(db, seed); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Printf("Seed data loaded from %s", path)
}

func readSeedFile(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &seed, nil
}

// loadSeed is idempotent: existing rows are matched by their natural key
// (email for employees, name for teams and projects) and left untouched.
func loadSeed(db *gorm.DB, seed *SeedFile) error {
	return db.Transaction(func(tx *gorm.DB) error {
		usersByEmail := make(map[string]*models.User, len(seed.Employees))
		for _, emp := range seed.Employees {
			user := &models.User{
				FirstName: emp.FirstName,
				LastName:  emp.LastName,
				Email:     emp.Email,
				Phone:     emp.Phone,
			}
			if err := tx.Where("email = ?", emp.Email).FirstOrCreate(user).Error; err != nil {
				return fmt.Errorf("seed employee %s: %w", emp.Email, err)
			}
			usersByEmail[emp.Email] = user

			if emp.CEO {
				grant := &models.UserRole{UserID: user.ID, Role: models.RoleCEO}
				err := tx.Where("user_id = ? AND role = ?", user.ID, models.RoleCEO).FirstOrCreate(grant).Error
				if err != nil {
					return fmt.Errorf("grant ceo to %s: %w", emp.Email, err)
				}
			}
		}

		projectsByName := make(map[string]*models.Project, len(seed.Projects))
		for _, proj := range seed.Projects {
			project := &models.Project{
				Name:        proj.Name,
				Description: proj.Description,
			}
			if err := tx.Where("name = ?", proj.Name).FirstOrCreate(project).Error; err != nil {
				return fmt.Errorf("seed project %s: %w", proj.Name, err)
			}
			projectsByName[proj.Name] = project
		}

		for _, teamData := range seed.Teams {
			leader, ok := usersByEmail[teamData.LeaderEmail]
			if !ok {
				return fmt.Errorf("team %s: leader %s not in seed", teamData.Name, teamData.LeaderEmail)
			}

			team := &models.Team{
				Name:     teamData.Name,
				LeaderID: leader.ID,
				Version:  1,
			}
			if project, ok := projectsByName[teamData.ProjectName]; ok {
				team.ProjectID = &project.ID
			}
			if err := tx.Where("name = ?", teamData.Name).FirstOrCreate(team).Error; err != nil {
				return fmt.Errorf("seed team %s: %w", teamData.Name, err)
			}

			if err := tx.Model(leader).Update("team_led_id", team.ID).Error; err != nil {
				return fmt.Errorf("set leader for team %s: %w", teamData.Name, err)
			}
			if err := syncRoles(tx, leader.ID, true); err != nil {
				return err
			}

			for _, email := range teamData.MemberEmails {
				member, ok := usersByEmail[email]
				if !ok {
					return fmt.Errorf("team %s: member %s not in seed", teamData.Name, email)
				}
				if member.ID == leader.ID {
					return fmt.Errorf("team %s: leader cannot also be listed as member", teamData.Name)
				}
				if err := tx.Model(member).Update("team_id", team.ID).Error; err != nil {
					return fmt.Errorf("set membership for %s: %w", email, err)
				}
				if err := syncRoles(tx, member.ID, false); err != nil {
					return err
				}
			}
		}

		// Everyone not placed in a team ends up with the unassigned role,
		// except the ones that got a derived role above.
		for _, user := range usersByEmail {
			var count int64
			err := tx.Model(&models.UserRole{}).
				Where("user_id = ? AND role IN ?", user.ID, []models.Role{models.RoleTeamLead, models.RoleDeveloper}).
				Count(&count).Error
			if err != nil {
				return fmt.Errorf("count roles for %s: %w", user.Email, err)
			}
			if count == 0 {
				grant := &models.UserRole{UserID: user.ID, Role: models.RoleUnassigned}
				err := tx.Where("user_id = ? AND role = ?", user.ID, models.RoleUnassigned).FirstOrCreate(grant).Error
				if err != nil {
					return fmt.Errorf("grant unassigned to %s: %w", user.Email, err)
				}
			}
		}

		return nil
	})
}

func syncRoles(tx *gorm.DB, userID uuid.UUID, isLeader bool) error {
	role := models.RoleDeveloper
	if isLeader {
		role = models.RoleTeamLead
	}
	grant := &models.UserRole{UserID: userID, Role: role}
	err := tx.Where("user_id = ? AND role = ?", userID, role).FirstOrCreate(grant).Error
	if err != nil {
		return fmt.Errorf("grant %s: %w", role, err)
	}
	if err := tx.Where("user_id = ? AND role = ?", userID, models.RoleUnassigned).Delete(&models.UserRole{}).Error; err != nil {
		return fmt.Errorf("revoke unassigned: %w", err)
	}
	return nil
}
