// internal/database/seeds.go
package database

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/fanstore/storefront-backend/internal/models"
)

type seedTeam struct {
	league models.LeagueCode
	name   string
	city   string
}

type seedProduct struct {
	category string
	name     string
	price    string
	tags     []string
}

var (
	seedTeams = []seedTeam{
		{models.LeagueNHL, "Maple Leafs", "Toronto"},
		{models.LeagueNHL, "Canadiens", "Montreal"},
		{models.LeagueNFL, "Packers", "Green Bay"},
		{models.LeagueNFL, "Chiefs", "Kansas City"},
		{models.LeagueNBA, "Raptors", "Toronto"},
		{models.LeagueNBA, "Celtics", "Boston"},
		{models.LeagueMLB, "Blue Jays", "Toronto"},
		{models.LeagueMLB, "Yankees", "New York"},
	}

	seedTags = []struct {
		label      string
		adjustment string
	}{
		{"Plain", "0.00"},
		{"Custom Name", "5.00"},
		{"Custom Number", "3.00"},
		{"Patch", "1.50"},
		{"Clearance", "-4.00"},
	}

	seedProducts = []seedProduct{
		{"Jerseys", "Home Jersey", "39.99", []string{"Plain", "Custom Name", "Custom Number"}},
		{"Jerseys", "Away Jersey", "39.99", []string{"Plain", "Custom Name", "Custom Number", "Patch"}},
		{"Headwear", "Snapback Cap", "10.00", []string{"Plain", "Patch"}},
		{"Headwear", "Winter Toque", "14.50", []string{"Plain", "Clearance"}},
		{"Accessories", "Team Scarf", "19.95", []string{"Plain"}},
	}
)

// Seed initial data. Every block is skipped when its table already has rows,
// so running it against a populated database is a no-op.
func SeedInitialData(db *gorm.DB) error {
	logrus.Info("Seeding initial data...")

	return WithTransaction(db, func(tx *gorm.DB) error {
		leagues, err := seedLeagues(tx)
		if err != nil {
			return err
		}

		user, err := seedDemoUser(tx, leagues[models.LeagueNHL])
		if err != nil {
			return err
		}

		if err := seedCatalog(tx); err != nil {
			return err
		}

		if err := seedOrder(tx, user); err != nil {
			return err
		}

		logrus.Info("Initial data seeding completed")
		return nil
	})
}

func seedLeagues(tx *gorm.DB) (map[models.LeagueCode]int64, error) {
	ids := make(map[models.LeagueCode]int64)

	for _, code := range []models.LeagueCode{models.LeagueNHL, models.LeagueNFL, models.LeagueNBA, models.LeagueMLB} {
		league := models.League{Name: code}
		if err := tx.Where(models.League{Name: code}).FirstOrCreate(&league).Error; err != nil {
			return nil, fmt.Errorf("failed to seed league %s: %w", code, err)
		}
		ids[code] = league.ID
	}

	var teamCount int64
	if err := tx.Model(&models.Team{}).Count(&teamCount).Error; err != nil {
		return nil, err
	}
	if teamCount == 0 {
		for _, t := range seedTeams {
			team := models.Team{LeagueID: ids[t.league], Name: t.name, City: t.city}
			if err := tx.Create(&team).Error; err != nil {
				return nil, fmt.Errorf("failed to seed team %s: %w", t.name, err)
			}
		}
	}

	return ids, nil
}

func seedDemoUser(tx *gorm.DB, leagueID int64) (*models.User, error) {
	var user models.User
	err := tx.Where("username = ?", "demo").First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user = models.User{
		Username: "demo",
		Email:    "demo@fanstore.local",
		LeagueID: &leagueID,
	}
	if err := user.SetPassword("demo-password"); err != nil {
		return nil, fmt.Errorf("failed to set demo password: %w", err)
	}
	if err := tx.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create demo user: %w", err)
	}

	logrus.WithField("user_id", user.ID).Info("Demo user created successfully")
	return &user, nil
}

func seedCatalog(tx *gorm.DB) error {
	var productCount int64
	if err := tx.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount > 0 {
		return nil
	}

	tags := make(map[string]models.Tag)
	for _, t := range seedTags {
		tag := models.Tag{Label: t.label, PriceAdjustment: decimal.RequireFromString(t.adjustment)}
		if err := tx.Create(&tag).Error; err != nil {
			return fmt.Errorf("failed to seed tag %s: %w", t.label, err)
		}
		tags[t.label] = tag
	}

	categories := make(map[string]int64)
	for _, p := range seedProducts {
		if _, ok := categories[p.category]; ok {
			continue
		}
		category := models.Category{Name: p.category}
		if err := tx.Create(&category).Error; err != nil {
			return fmt.Errorf("failed to seed category %s: %w", p.category, err)
		}
		categories[p.category] = category.ID
	}

	for _, p := range seedProducts {
		categoryID := categories[p.category]
		product := models.Product{
			CategoryID: &categoryID,
			Name:       p.name,
			Price:      decimal.RequireFromString(p.price),
		}
		for _, label := range p.tags {
			product.Tags = append(product.Tags, tags[label])
		}
		if err := tx.Create(&product).Error; err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.name, err)
		}
	}

	return nil
}

// seedOrder opens one order for the demo user holding a plain home jersey,
// priced the same way the API would price it.
func seedOrder(tx *gorm.DB, user *models.User) error {
	var orderCount int64
	if err := tx.Model(&models.Order{}).Count(&orderCount).Error; err != nil {
		return err
	}
	if orderCount > 0 {
		return nil
	}

	var jersey models.Product
	if err := tx.Where("name = ?", "Home Jersey").First(&jersey).Error; err != nil {
		return fmt.Errorf("failed to load seed product: %w", err)
	}

	order := models.Order{UserID: user.ID}
	if err := tx.Create(&order).Error; err != nil {
		return fmt.Errorf("failed to seed order: %w", err)
	}

	item := models.OrderItem{
		OrderID:         &order.ID,
		ProductID:       jersey.ID,
		Quantity:        2,
		PriceAtPurchase: jersey.Price,
	}
	if err := tx.Create(&item).Error; err != nil {
		return fmt.Errorf("failed to seed order item: %w", err)
	}

	return nil
}
