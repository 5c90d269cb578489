package db

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
)

func InitDatabase() (*pgxpool.Pool, error) {

	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
	host := os.Getenv("DATABASE_HOST")
	port := os.Getenv("DATABASE_PORT")
	user := os.Getenv("DATABASE_USER")
	password := os.Getenv("DATABASE_PASSWORD")
	database_name := os.Getenv("DATABASE_NAME")

	config, err := pgxpool.ParseConfig(" host=" + host + " port=" + port + " user=" + user + " password=" + password + " database=" + database_name)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}

	conn, err := pgxpool.ConnectConfig(context.Background(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	// Create tables
	sqlQueries := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

		`CREATE TABLE IF NOT EXISTS patients (
			patient_id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL UNIQUE,
			hashed_password VARCHAR(100) NOT NULL,
			address VARCHAR(200) NOT NULL,
			phone_number VARCHAR(30) NOT NULL,
			birth_date DATE NOT NULL,
			reset_token VARCHAR(100),
			reset_token_expiry TIMESTAMP,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS admins (
			admin_id uuid PRIMARY KEY DEFAULT uuid_generate_v4(),
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL UNIQUE,
			hashed_password VARCHAR(100) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS triages (
			triage_id SERIAL PRIMARY KEY,
			patient_id uuid NOT NULL REFERENCES patients(patient_id),
			diabetic BOOLEAN NOT NULL,
			hypertensive BOOLEAN NOT NULL,
			obese BOOLEAN NOT NULL,
			has_fever BOOLEAN NOT NULL,
			temperature NUMERIC,
			has_pain BOOLEAN NOT NULL,
			pain_location VARCHAR(100),
			weight NUMERIC NOT NULL,
			age INTEGER NOT NULL,
			score INTEGER NOT NULL,
			severity VARCHAR(20) NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS appointments (
			appointment_id SERIAL PRIMARY KEY,
			patient_id uuid NOT NULL REFERENCES patients(patient_id),
			admin_id uuid NOT NULL REFERENCES admins(admin_id),
			triage_id INTEGER NOT NULL UNIQUE REFERENCES triages(triage_id),
			appointment_date DATE NOT NULL,
			appointment_time VARCHAR(10) NOT NULL,
			location VARCHAR(200) NOT NULL,
			specialty VARCHAR(100) NOT NULL,
			physician VARCHAR(100) NOT NULL,
			confirmed BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		`CREATE TABLE IF NOT EXISTS medical_records (
			record_id SERIAL PRIMARY KEY,
			appointment_id INTEGER NOT NULL UNIQUE REFERENCES appointments(appointment_id),
			patient_id uuid NOT NULL REFERENCES patients(patient_id),
			admin_id uuid NOT NULL REFERENCES admins(admin_id),
			diagnosis TEXT NOT NULL,
			conclusion TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,
	}

	for _, query := range sqlQueries {
		_, err = conn.Exec(context.Background(), query)
		if err != nil {
			return nil, fmt.Errorf("failed to create table: %v", err)
		}
	}

	return conn, nil
}
