package main

import (
	"context"
	"flag"
	"log"

	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	"gearguard/seeders"
)

func main() {
	runAdmin := flag.Bool("admin", false, "Создать учётку администратора")
	runDemo := flag.Bool("demo", false, "Наполнить базу демо-данными (бригады, оборудование)")
	runAll := flag.Bool("all", false, "Запустить все сидеры")

	flag.Parse()

	if !*runAdmin && !*runDemo && !*runAll {
		log.Println("Не выбран ни один сидер. Доступные флаги:")
		flag.PrintDefaults()
		return
	}

	cfg := config.New()
	log.Println("📦 Используется DSN:", cfg.Postgres.DSN)

	dbPool, err := postgresql.Connect(context.Background(), cfg.Postgres.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer dbPool.Close()

	if *runAll || *runAdmin {
		seeders.SeedAdminUser(dbPool)
	}
	if *runAll || *runDemo {
		seeders.SeedDemoData(dbPool)
	}

	log.Println("✅ Сидирование завершено.")
}
