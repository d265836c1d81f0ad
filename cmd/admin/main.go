package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"cvforge/internal/config"
	"cvforge/internal/database"
	"cvforge/internal/purchase"
	"cvforge/internal/template"
)

// 运营工具：在支付渠道异常时为用户人工补登模板购买。
// 写入占位金额与合成交易号，真实 webhook 到达后会被对账修正。
func main() {
	var (
		userID     = flag.Uint("user-id", 0, "用户 ID（必填）")
		templateID = flag.String("template-id", "", "模板 slug（必填）")
		dbHost     = flag.String("db-host", "", "数据库 Host（可选，默认读 DATABASE_HOST）")
		dbPort     = flag.Int("db-port", 0, "数据库 Port（可选，默认读 DATABASE_PORT）")
		dbName     = flag.String("db-name", "", "数据库名（可选，默认读 POSTGRES_DB）")
		dbUser     = flag.String("db-user", "", "数据库用户（可选，默认读 POSTGRES_USER）")
		dbPass     = flag.String("db-password", "", "数据库密码（可选，默认读 POSTGRES_PASSWORD）")
		sslMode    = flag.String("db-sslmode", "", "数据库 SSLMODE（可选，默认读 DATABASE_SSLMODE）")
	)
	flag.Parse()

	if *userID == 0 {
		log.Fatal("missing required flag: --user-id")
	}
	slug := strings.TrimSpace(*templateID)
	if slug == "" {
		log.Fatal("missing required flag: --template-id")
	}
	if !template.Exists(slug) {
		log.Fatalf("unknown template %q", slug)
	}
	if template.IsFreeTier(slug) {
		log.Fatalf("template %q is free, nothing to grant", slug)
	}

	dbCfg, err := loadDatabaseConfig(*dbHost, *dbPort, *dbName, *dbUser, *dbPass, *sslMode)
	if err != nil {
		log.Fatalf("load database config: %v", err)
	}

	db, err := database.InitDatabase(dbCfg)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	if err := db.AutoMigrate(&database.TemplatePurchase{}); err != nil {
		log.Fatalf("auto migrate: %v", err)
	}

	recorder := purchase.NewRecorder(db)
	outcome, err := recorder.RecordFallback(context.Background(), *userID, slug)
	if err != nil {
		log.Fatalf("record purchase: %v", err)
	}

	if outcome == purchase.OutcomeNoop {
		fmt.Printf("用户 %d 已拥有模板 %q，无需补登。\n", *userID, slug)
		return
	}
	fmt.Printf("已为用户 %d 补登模板 %q（占位金额，待 webhook 对账修正）。\n", *userID, slug)
}

func loadDatabaseConfig(host string, port int, name, user, password, sslmode string) (config.DatabaseConfig, error) {
	if strings.TrimSpace(host) == "" {
		host = os.Getenv("DATABASE_HOST")
	}
	if port <= 0 {
		if env := strings.TrimSpace(os.Getenv("DATABASE_PORT")); env != "" {
			p, err := strconv.Atoi(env)
			if err != nil {
				return config.DatabaseConfig{}, fmt.Errorf("parse DATABASE_PORT: %w", err)
			}
			port = p
		}
	}
	if strings.TrimSpace(name) == "" {
		name = os.Getenv("POSTGRES_DB")
	}
	if strings.TrimSpace(user) == "" {
		user = os.Getenv("POSTGRES_USER")
	}
	if strings.TrimSpace(password) == "" {
		password = os.Getenv("POSTGRES_PASSWORD")
	}
	if strings.TrimSpace(sslmode) == "" {
		sslmode = os.Getenv("DATABASE_SSLMODE")
	}

	if strings.TrimSpace(host) == "" {
		host = "localhost"
	}
	if port <= 0 {
		port = 5432
	}
	if strings.TrimSpace(sslmode) == "" {
		sslmode = "disable"
	}
	if strings.TrimSpace(name) == "" {
		return config.DatabaseConfig{}, errors.New("database name is required (POSTGRES_DB)")
	}
	if strings.TrimSpace(user) == "" {
		return config.DatabaseConfig{}, errors.New("database user is required (POSTGRES_USER)")
	}
	if strings.TrimSpace(password) == "" {
		return config.DatabaseConfig{}, errors.New("database password is required (POSTGRES_PASSWORD)")
	}

	return config.DatabaseConfig{
		Host:     host,
		Port:     port,
		Name:     name,
		User:     user,
		Password: password,
		SSLMode:  sslmode,
	}, nil
}
