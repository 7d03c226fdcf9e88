package seeders

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/pkg/constants"
	"gearguard/pkg/utils"
)

// SeedAdminUser создаёт локальную учётку администратора, если её ещё нет.
func SeedAdminUser(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Создание администратора...")

	if err := seedAdmin(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка создания администратора: %v", err)
	}
	log.Println("✅ Администратор готов.")
}

func seedAdmin(ctx context.Context, db *pgxpool.Pool) error {
	email := "admin@gearguard.local"

	var userID uint64
	err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	if err == nil {
		log.Println("  - Администратор уже существует, пропускаем.")
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("ошибка проверки существования администратора: %w", err)
	}

	// Пароль по умолчанию, сменить после первого входа.
	hashedPassword, err := utils.HashPassword("admin12345")
	if err != nil {
		return err
	}

	query := `
		INSERT INTO users (open_id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)`
	if _, err := db.Exec(ctx, query,
		"local-admin", "Администратор", email, hashedPassword, constants.RoleAdmin,
	); err != nil {
		return fmt.Errorf("ошибка создания администратора: %w", err)
	}

	log.Println("  - Администратор создан:", email)
	return nil
}

// SeedDemoData наполняет базу демонстрационными бригадами и оборудованием.
func SeedDemoData(db *pgxpool.Pool) {
	ctx := context.Background()
	log.Println("▶️  Наполнение демо-данными...")

	if err := seedTeams(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения бригад: %v", err)
	}
	if err := seedEquipment(ctx, db); err != nil {
		log.Fatalf("❌ Ошибка наполнения оборудования: %v", err)
	}
	log.Println("✅ Демо-данные готовы.")
}

func seedTeams(ctx context.Context, db *pgxpool.Pool) error {
	teams := []struct {
		name, description string
	}{
		{"Механики", "Ремонт станков и производственной техники"},
		{"Электрики", "Электрооборудование и силовые сети"},
		{"ИТ-поддержка", "Компьютеры, принтеры и офисная техника"},
	}

	for _, t := range teams {
		_, err := db.Exec(ctx, `
			INSERT INTO maintenance_teams (name, description)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM maintenance_teams WHERE name = $1)`,
			t.name, t.description)
		if err != nil {
			return fmt.Errorf("ошибка вставки бригады %q: %w", t.name, err)
		}
	}
	return nil
}

func seedEquipment(ctx context.Context, db *pgxpool.Pool) error {
	items := []struct {
		name, serial, category string
	}{
		{"Токарный станок HAAS ST-20", "HAAS-ST20-001", "CNC Machine"},
		{"Принтер HP LaserJet M428", "HP-M428-017", "Printer"},
		{"Ноутбук Dell Latitude 5540", "DL-5540-103", "Laptop"},
	}

	for _, item := range items {
		_, err := db.Exec(ctx, `
			INSERT INTO equipment (name, serial_number, category_id)
			SELECT $1, $2, c.id
			FROM equipment_categories c
			WHERE c.name = $3
			  AND NOT EXISTS (SELECT 1 FROM equipment WHERE serial_number = $2)`,
			item.name, item.serial, item.category)
		if err != nil {
			return fmt.Errorf("ошибка вставки оборудования %q: %w", item.serial, err)
		}
	}
	return nil
}
