// Файл: internal/db/db.go
package db

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Store инкапсулирует подключение к базе данных. Экземпляр создается один раз
// в main и передается зависимым компонентам явно, без глобального состояния.
// Store encapsulates the database connection. An instance is created once in
// main and passed to dependent components explicitly, without global state.
type Store struct {
	db *sql.DB
}

// NewStore открывает соединение с базой данных, создает схему и выполняет миграции.
// NewStore opens the database connection, creates the schema and runs migrations.
func NewStore(databaseURL string) (*Store, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL не установлена")
	}

	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к базе данных: %v", err)
	}

	conn.SetMaxOpenConns(50)
	conn.SetMaxIdleConns(20)
	conn.SetConnMaxLifetime(5 * time.Minute)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ошибка проверки соединения с базой данных: %v", err)
	}
	log.Println("Успешное подключение к базе данных.")

	s := &Store{db: conn}
	if err := s.createSchema(); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

// createSchema создает таблицы, выполняет миграции и строит индексы.
func (s *Store) createSchema() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("ошибка начала транзакции для создания таблиц: %v", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			log.Printf("Откат транзакции из-за ошибки: %v", err)
			tx.Rollback()
		}
	}()

	createTablesSQL := `
        CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            chat_id BIGINT UNIQUE NOT NULL,
            username TEXT,
            current_service TEXT,
            created_at TIMESTAMP DEFAULT NOW(),
            last_active TIMESTAMP DEFAULT NOW()
        );
        CREATE TABLE IF NOT EXISTS shifts (
            id SERIAL PRIMARY KEY,
            user_id INTEGER REFERENCES users(id),
            service TEXT,
            start_time TIMESTAMP,
            end_time TIMESTAMP,
            earnings FLOAT DEFAULT 0,
            order_count INTEGER DEFAULT 0,
            weather TEXT,
            created_at TIMESTAMP DEFAULT NOW()
        );
        CREATE TABLE IF NOT EXISTS orders (
            id SERIAL PRIMARY KEY,
            user_id INTEGER REFERENCES users(id) NOT NULL,
            shift_id INTEGER REFERENCES shifts(id),
            time TEXT,
            address TEXT,
            price FLOAT DEFAULT 0,
            distance FLOAT DEFAULT 0,
            status TEXT DEFAULT 'pending',
            created_at TIMESTAMP DEFAULT NOW()
        );
        CREATE TABLE IF NOT EXISTS ai_advice (
            id SERIAL PRIMARY KEY,
            user_id INTEGER REFERENCES users(id),
            request_id TEXT,
            advice_type TEXT,
            question TEXT,
            advice_text TEXT,
            created_at TIMESTAMP DEFAULT NOW()
        );
    `
	_, err = tx.Exec(createTablesSQL)
	if err != nil {
		return fmt.Errorf("ошибка создания таблиц: %v", err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("ошибка фиксации транзакции создания таблиц: %v", err)
	}
	log.Println("Создание таблиц (если не существуют) завершено.")

	if err = s.migrateSchema(); err != nil {
		return fmt.Errorf("ошибка выполнения миграции схемы: %v", err)
	}

	createIndexesSQL := `
        CREATE INDEX IF NOT EXISTS idx_users_chat_id ON users(chat_id);
        CREATE INDEX IF NOT EXISTS idx_users_last_active ON users(last_active);
        CREATE INDEX IF NOT EXISTS idx_shifts_user_id ON shifts(user_id);
        CREATE INDEX IF NOT EXISTS idx_shifts_start_time ON shifts(start_time);
        CREATE INDEX IF NOT EXISTS idx_orders_user_id ON orders(user_id);
        CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);
        CREATE INDEX IF NOT EXISTS idx_ai_advice_user_created ON ai_advice(user_id, created_at);
    `
	// Индексы создаем по одному, чтобы изолировать возможные ошибки
	indexStatements := strings.Split(strings.TrimSpace(createIndexesSQL), ";")
	for _, stmt := range indexStatements {
		trimmedStmt := strings.TrimSpace(stmt)
		if trimmedStmt == "" {
			continue
		}
		if _, errIdx := s.db.Exec(trimmedStmt); errIdx != nil {
			log.Printf("Предупреждение: ошибка при создании индекса ('%s'): %v.", trimmedStmt, errIdx)
		}
	}
	log.Println("Создание индексов (если не существуют) завершено.")

	log.Println("Инициализация базы данных успешно завершена.")
	return nil
}

// migrateSchema выполняет идемпотентные миграции схемы.
// migrateSchema runs idempotent schema migrations.
func (s *Store) migrateSchema() error {
	migrations := []struct {
		name string
		sql  string
	}{
		{
			name: "shifts.weather",
			sql:  `ALTER TABLE shifts ADD COLUMN IF NOT EXISTS weather TEXT;`,
		},
		{
			name: "orders.shift_id",
			sql:  `ALTER TABLE orders ADD COLUMN IF NOT EXISTS shift_id INTEGER REFERENCES shifts(id);`,
		},
		{
			name: "ai_advice.request_id",
			sql:  `ALTER TABLE ai_advice ADD COLUMN IF NOT EXISTS request_id TEXT;`,
		},
		{
			name: "ai_advice.question",
			sql:  `ALTER TABLE ai_advice ADD COLUMN IF NOT EXISTS question TEXT;`,
		},
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration.sql); err != nil {
			if strings.Contains(err.Error(), "already exists") {
				log.Printf("INFO: Миграция '%s' пропущена (объект уже существует). Детали: %v", migration.name, err)
				continue
			}
			return fmt.Errorf("ошибка миграции схемы ('%s'): %v", migration.name, err)
		}
	}

	log.Println("Миграция схемы базы данных успешно выполнена (или не требовалась).")
	return nil
}

// Close закрывает соединение с базой данных.
// Close closes the database connection.
func (s *Store) Close() {
	if s != nil && s.db != nil {
		s.db.Close()
		log.Println("Соединение с базой данных закрыто.")
	}
}
