package services

import (
	"errors"
	"familypoints-backend/internal/database"
	"familypoints-backend/internal/models"
	"fmt"
	"strings"
)

var ErrStorageUnavailable = errors.New("database is not available")

// HealthReport distinguishes a dead connection from a reachable database
// with missing tables, so the caller can show a "run migrations" hint
// instead of a generic failure.
type HealthReport struct {
	Connected      bool
	ExistingTables []string
	MissingTables  []string
	AllPresent     bool
	Message        string
}

func CheckHealth() (*HealthReport, error) {
	if database.DB == nil {
		return nil, ErrStorageUnavailable
	}
	if err := database.Ping(); err != nil {
		return nil, ErrStorageUnavailable
	}

	probes := []struct {
		name  string
		model interface{}
	}{
		{"points_accounts", &models.PointsAccount{}},
		{"point_transactions", &models.PointTransaction{}},
		{"catalog_items", &models.CatalogItem{}},
		{"bank_accounts", &models.BankAccount{}},
		{"bank_transactions", &models.BankTransaction{}},
		{"financial_products", &models.FinancialProduct{}},
		{"investments", &models.Investment{}},
		{"daily_bonuses", &models.DailyBonus{}},
		{"wheel_of_fortunes", &models.WheelOfFortune{}},
		{"admin_passwords", &models.AdminPassword{}},
	}

	report := &HealthReport{Connected: true}
	for _, probe := range probes {
		if database.DB.Migrator().HasTable(probe.model) {
			report.ExistingTables = append(report.ExistingTables, probe.name)
		} else {
			report.MissingTables = append(report.MissingTables, probe.name)
		}
	}
	report.AllPresent = len(report.MissingTables) == 0

	if report.AllPresent {
		report.Message = "Base de données connectée et toutes les tables sont présentes"
	} else {
		report.Message = fmt.Sprintf("Base de données connectée mais certaines tables manquent: %s",
			strings.Join(report.MissingTables, ", "))
	}
	return report, nil
}
