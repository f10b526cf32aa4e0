package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"ministry-portal-backend/internal/auth"
	"ministry-portal-backend/internal/catalog"
	"ministry-portal-backend/internal/database/models"
	"ministry-portal-backend/internal/repository"
	"ministry-portal-backend/internal/service"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// MemberData is one member entry of a seed file
type MemberData struct {
	Name           string `yaml:"name"`
	Email          string `yaml:"email"`
	Password       string `yaml:"password"`
	Role           string `yaml:"role,omitempty"`
	SupervisorName string `yaml:"supervisor_name,omitempty"`
	IsStaff        bool   `yaml:"is_staff,omitempty"`
	StaffName      string `yaml:"staff_name,omitempty"`
}

// SeedFile is the YAML layout accepted by the seed command
type SeedFile struct {
	Members []MemberData `yaml:"members"`
}

// SeedResult counts what a seed run did
type SeedResult struct {
	Created int
	Skipped int
}

func seedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create members from a YAML file, skipping emails that already exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", file, err)
			}
			seed, err := parseSeedFile(data, app.catalog)
			if err != nil {
				return err
			}

			db, err := app.DB()
			if err != nil {
				return err
			}
			users := repository.NewUserRepository(db)
			authService, err := auth.NewAuthService(auth.NewAuthConfig(app.cfg), users)
			if err != nil {
				return err
			}

			result, err := applySeed(seed, users, authService, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %d members, skipped %d existing\n", result.Created, result.Skipped)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "members.yaml", "Seed file")
	return cmd
}

// parseSeedFile decodes and checks a seed file against the catalog
func parseSeedFile(data []byte, cat *catalog.Catalog) (*SeedFile, error) {
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	seen := make(map[string]struct{}, len(seed.Members))
	for i := range seed.Members {
		m := &seed.Members[i]
		m.Email = strings.ToLower(strings.TrimSpace(m.Email))
		m.Role = strings.ToUpper(strings.TrimSpace(m.Role))
		if m.Role == "" {
			m.Role = string(models.UserRoleMember)
		}

		switch {
		case strings.TrimSpace(m.Name) == "":
			return nil, fmt.Errorf("member %d: name is required", i+1)
		case m.Email == "":
			return nil, fmt.Errorf("member %d: email is required", i+1)
		case len(m.Password) < 6:
			return nil, fmt.Errorf("member %s: password must have at least 6 characters", m.Email)
		case !models.UserRole(m.Role).IsValid():
			return nil, fmt.Errorf("member %s: unknown role %q", m.Email, m.Role)
		case m.SupervisorName != "" && !cat.IsSupervisor(m.SupervisorName):
			return nil, fmt.Errorf("member %s: unknown supervisor %q", m.Email, m.SupervisorName)
		case m.StaffName != "" && !cat.IsStaff(m.StaffName):
			return nil, fmt.Errorf("member %s: unknown staff member %q", m.Email, m.StaffName)
		case m.StaffName != "" && !m.IsStaff:
			return nil, fmt.Errorf("member %s: staff_name requires is_staff", m.Email)
		}

		if _, dup := seen[m.Email]; dup {
			return nil, fmt.Errorf("member %s: duplicate email", m.Email)
		}
		seen[m.Email] = struct{}{}
	}
	return &seed, nil
}

// applySeed creates the members whose email is not registered yet
func applySeed(seed *SeedFile, users repository.UserRepositoryInterface, hasher service.PasswordHasher, out io.Writer) (SeedResult, error) {
	var result SeedResult
	for _, m := range seed.Members {
		if _, err := users.GetByEmail(m.Email); err == nil {
			fmt.Fprintf(out, "  skip   %s (already registered)\n", m.Email)
			result.Skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return result, fmt.Errorf("failed to look up %s: %w", m.Email, err)
		}

		hash, err := hasher.HashPassword(m.Password)
		if err != nil {
			return result, err
		}
		user := &models.User{
			Name:           strings.TrimSpace(m.Name),
			Email:          m.Email,
			PasswordHash:   hash,
			Role:           models.UserRole(m.Role),
			IsStaff:        m.IsStaff,
			SupervisorName: optional(m.SupervisorName),
			StaffName:      optional(m.StaffName),
		}
		if err := users.Create(user); err != nil {
			return result, fmt.Errorf("failed to create %s: %w", m.Email, err)
		}
		fmt.Fprintf(out, "  create %s\n", m.Email)
		result.Created++
	}
	return result, nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
