// seed puebla la base con datos de demostración: usuarios (uno por rol),
// categorías, proveedores, productos y los movimientos de apertura del stock.
// Es idempotente: los registros ya existentes se saltan.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-control-api/internal/application/auth"
	"github.com/jhoicas/stock-control-api/internal/application/dto"
	"github.com/jhoicas/stock-control-api/internal/application/ledger"
	"github.com/jhoicas/stock-control-api/internal/application/usecase"
	"github.com/jhoicas/stock-control-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-control-api/pkg/config"
	"github.com/jhoicas/stock-control-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool, cfg.DB.LockTimeoutMS)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo)
	recordUC := ledger.NewRecordMovementUseCase(txRunner, userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Usuarios: uno por rol. Password de demo, cambiar en cualquier entorno real.
	users := []dto.RegisterRequest{
		{Name: "Administrador", Email: "admin@example.com", Password: "admin12345", Role: "admin"},
		{Name: "Gerente de Stock", Email: "manager@example.com", Password: "manager12345", Role: "manager"},
		{Name: "Operador de Bodega", Email: "operator@example.com", Password: "operator12345", Role: "operator"},
	}
	var adminID string
	for _, u := range users {
		if existing, err := userRepo.FindByEmail(u.Email); err != nil {
			log.Fatal().Err(err).Str("email", u.Email).Msg("buscar usuario")
		} else if existing != nil {
			if u.Role == "admin" {
				adminID = existing.ID
			}
			log.Info().Str("email", u.Email).Msg("usuario ya existe, se salta")
			continue
		}
		out, err := authUC.RegisterUser(u)
		if err != nil {
			log.Fatal().Err(err).Str("email", u.Email).Msg("crear usuario")
		}
		if u.Role == "admin" {
			adminID = out.ID
		}
		log.Info().Str("email", u.Email).Str("role", u.Role).Msg("usuario creado")
	}

	categories := []dto.CreateCategoryRequest{
		{Name: "Electrónicos", Description: "Equipos y componentes electrónicos"},
		{Name: "Papelería", Description: "Insumos de oficina"},
		{Name: "Limpieza", Description: "Productos de aseo y limpieza"},
	}
	categoryIDs := make(map[string]string)
	for _, in := range categories {
		if existing, err := categoryRepo.GetByName(in.Name); err != nil {
			log.Fatal().Err(err).Str("name", in.Name).Msg("buscar categoría")
		} else if existing != nil {
			categoryIDs[in.Name] = existing.ID
			continue
		}
		out, err := categoryUC.Create(in)
		if err != nil {
			log.Fatal().Err(err).Str("name", in.Name).Msg("crear categoría")
		}
		categoryIDs[in.Name] = out.ID
		log.Info().Str("name", in.Name).Msg("categoría creada")
	}

	suppliers := []dto.CreateSupplierRequest{
		{Name: "Distribuidora Central", CNPJ: "11222333000181", Email: "ventas@central.example.com", Phone: "1133334444"},
		{Name: "Insumos del Sur", CNPJ: "99888777000162", Email: "contacto@delsur.example.com", Phone: "2155556666"},
	}
	supplierIDs := make(map[string]string)
	for _, in := range suppliers {
		if existing, err := supplierRepo.GetByCNPJ(in.CNPJ); err != nil {
			log.Fatal().Err(err).Str("cnpj", in.CNPJ).Msg("buscar proveedor")
		} else if existing != nil {
			supplierIDs[in.Name] = existing.ID
			continue
		}
		out, err := supplierUC.Create(in)
		if err != nil {
			log.Fatal().Err(err).Str("name", in.Name).Msg("crear proveedor")
		}
		supplierIDs[in.Name] = out.ID
		log.Info().Str("name", in.Name).Msg("proveedor creado")
	}

	cost := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}
	products := []struct {
		req     dto.CreateProductRequest
		opening string // stock de apertura, registrado como movimiento entry
	}{
		{
			req: dto.CreateProductRequest{
				SKU: "MON-24-LED", Name: "Monitor LED 24\"",
				CategoryID: categoryIDs["Electrónicos"], SupplierID: supplierIDs["Distribuidora Central"],
				UnitOfMeasure: "unit", CostPrice: cost("520.00"),
				SellingPrice: decimal.RequireFromString("799.90"),
				MinimumStock: decimal.NewFromInt(5),
			},
			opening: "12",
		},
		{
			req: dto.CreateProductRequest{
				SKU: "PAP-A4-500", Name: "Resma papel A4 500 hojas",
				CategoryID: categoryIDs["Papelería"], SupplierID: supplierIDs["Insumos del Sur"],
				UnitOfMeasure: "package", CostPrice: cost("3.80"),
				SellingPrice: decimal.RequireFromString("6.50"),
				MinimumStock: decimal.NewFromInt(20),
			},
			opening: "150",
		},
		{
			req: dto.CreateProductRequest{
				SKU: "LIM-DET-5L", Name: "Detergente industrial 5L",
				CategoryID: categoryIDs["Limpieza"], SupplierID: supplierIDs["Insumos del Sur"],
				UnitOfMeasure: "liter", CostPrice: cost("9.20"),
				SellingPrice: decimal.RequireFromString("15.00"),
				MinimumStock: decimal.NewFromInt(10),
			},
			opening: "40",
		},
	}
	for _, p := range products {
		if existing, err := productRepo.GetBySKU(p.req.SKU); err != nil {
			log.Fatal().Err(err).Str("sku", p.req.SKU).Msg("buscar producto")
		} else if existing != nil {
			log.Info().Str("sku", p.req.SKU).Msg("producto ya existe, se salta")
			continue
		}
		out, err := productUC.Create(p.req)
		if err != nil {
			log.Fatal().Err(err).Str("sku", p.req.SKU).Msg("crear producto")
		}
		log.Info().Str("sku", p.req.SKU).Msg("producto creado")

		// Stock de apertura vía el motor de movimientos, para que el ledger
		// explique el current_stock desde el primer día.
		_, err = recordUC.RecordFromRequest(ctx, adminID, dto.RecordMovementRequest{
			ProductID:    out.ID,
			Type:         "entry",
			Quantity:     decimal.RequireFromString(p.opening),
			UnitCost:     p.req.CostPrice,
			Reason:       "Stock de apertura",
			MovementDate: time.Now(),
		})
		if err != nil {
			log.Fatal().Err(err).Str("sku", p.req.SKU).Msg("movimiento de apertura")
		}
		log.Info().Str("sku", p.req.SKU).Str("quantity", p.opening).Msg("apertura registrada")
	}

	log.Info().Msg("seed completado")
}
