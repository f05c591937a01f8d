// seed puebla el almacén de estado con la tabla de precios del oro por
// defecto y algunas piezas de demostración.
//
// Uso: go run ./cmd/seed
// Con -hash imprime el hash bcrypt de una contraseña para las variables
// AUTH_ADMIN_PASSWORD_HASH / AUTH_STAFF_PASSWORD_HASH y termina:
//
//	go run ./cmd/seed -hash "mi-contraseña"
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Thahab-api/internal/domain/entity"
	"github.com/jhoicas/Thahab-api/internal/infrastructure/storage"
	"github.com/jhoicas/Thahab-api/pkg/config"
	"github.com/jhoicas/Thahab-api/pkg/logger"
)

func main() {
	hashFlag := flag.String("hash", "", "imprime el hash bcrypt de la contraseña y termina")
	flag.Parse()

	if *hashFlag != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*hashFlag), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "generar hash: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(hash))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	kv, err := storage.NewStoolapKV(ctx, cfg.Storage.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacén de estado")
	}
	defer kv.Close()

	prices := entity.DefaultGoldPrices(time.Now())
	storage.Save(ctx, kv, log, storage.KeyPrices, prices)

	products := []entity.Product{
		{
			ID:                  uuid.New().String(),
			Name:                "خاتم ذهب كلاسيكي",
			Category:            "خواتم",
			Karat:               entity.Karat21,
			Weight:              decimal.NewFromFloat(5.5),
			Quantity:            4,
			MakingChargePerGram: decimal.NewFromInt(100),
			CostPricePerGram:    decimal.NewFromInt(3500),
		},
		{
			ID:                  uuid.New().String(),
			Name:                "سلسلة ذهب إيطالية",
			Category:            "سلاسل",
			Karat:               entity.Karat18,
			Weight:              decimal.NewFromFloat(12.3),
			Quantity:            2,
			MakingChargePerGram: decimal.NewFromInt(150),
			CostPricePerGram:    decimal.NewFromInt(3000),
		},
		{
			ID:                  uuid.New().String(),
			Name:                "غوايش ذهب عيار 24",
			Category:            "غوايش",
			Karat:               entity.Karat24,
			Weight:              decimal.NewFromFloat(25),
			Quantity:            1,
			MakingChargePerGram: decimal.NewFromInt(80),
			CostPricePerGram:    decimal.NewFromInt(4000),
		},
	}
	storage.Save(ctx, kv, log, storage.KeyProducts, products)

	log.Info().
		Int("products", len(products)).
		Int("gold_prices", len(prices)).
		Msg("datos de demostración cargados")
}
