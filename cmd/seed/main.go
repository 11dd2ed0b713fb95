package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"obtconnect/internal/config"
	"obtconnect/internal/db"
	"obtconnect/internal/model"
	"obtconnect/internal/repository"
)

const defaultSeedFile = "seed/demo.json"

// SeedUser is an approved demo account in the seed file.
type SeedUser struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	District string `json:"district"`
	Role     string `json:"role"`
	Category string `json:"category"`
	Password string `json:"password"`
}

// SeedMember is a roster entry in the seed file.
type SeedMember struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Designation string `json:"designation"`
	District    string `json:"district"`
	Category    string `json:"category"`
	Roster      string `json:"roster"`
}

// SeedFile is the demo data layout.
type SeedFile struct {
	Users   []SeedUser   `json:"users"`
	Members []SeedMember `json:"members"`
}

func main() {
	cfg := config.Load()

	path := os.Getenv("SEED_FILE")
	if path == "" {
		path = defaultSeedFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("read seed file %s: %v", path, err)
	}

	var seed SeedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		log.Fatalf("parse seed file: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := gormDB.AutoMigrate(&model.User{}, &model.Member{}, &model.TeamMessage{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	members := repository.NewMemberRepository(gormDB)

	created := 0
	for _, su := range seed.Users {
		if _, err := users.FindByPhone(ctx, su.Phone); err == nil {
			continue // already seeded
		} else if err != gorm.ErrRecordNotFound {
			log.Fatalf("find user %s: %v", su.Phone, err)
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash password for %s: %v", su.Phone, err)
		}
		role := model.Role(su.Role)
		if role == "" {
			role = model.RoleMember
		}
		user := &model.User{
			ID:           uuid.New().String(),
			Name:         su.Name,
			Phone:        su.Phone,
			District:     su.District,
			Role:         role,
			Category:     model.Category(su.Category),
			PasswordHash: string(hashed),
			IsApproved:   true,
		}
		if err := users.Create(ctx, user); err != nil {
			log.Fatalf("create user %s: %v", su.Phone, err)
		}
		created++
	}
	log.Printf("seeded %d users", created)

	created = 0
	for _, sm := range seed.Members {
		roster := model.Roster(sm.Roster)
		if roster == "" {
			roster = model.RosterDistrict
		}
		if _, err := members.FindByPhone(ctx, roster, sm.Phone); err == nil {
			continue
		} else if err != gorm.ErrRecordNotFound {
			log.Fatalf("find member %s: %v", sm.Phone, err)
		}

		designation := sm.Designation
		if designation == "" {
			designation = "Member"
		}
		member := &model.Member{
			ID:          uuid.New().String(),
			Roster:      roster,
			Name:        sm.Name,
			Phone:       sm.Phone,
			Designation: designation,
			District:    sm.District,
			Category:    model.Category(sm.Category),
			JoinedAt:    time.Now().UTC(),
		}
		if err := members.Save(ctx, member); err != nil {
			log.Fatalf("create member %s: %v", sm.Phone, err)
		}
		created++
	}
	log.Printf("seeded %d members", created)
}
