// Command seed loads a demo dataset: three client accounts, a phone catalog
// and a handful of users per client. Safe to run repeatedly — products are
// upserted and duplicate clients or users are skipped.
package main

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bilemo/catalog-api/internal/core/domain"
	"github.com/bilemo/catalog-api/internal/infrastructure/config"
	mongoinfra "github.com/bilemo/catalog-api/internal/infrastructure/db/mongo"
	"github.com/bilemo/catalog-api/pkg/logger"
)

const seedPassword = "password123"

type clientSeed struct {
	name  string
	email string
	users []userSeed
}

type userSeed struct {
	first string
	last  string
	email string
}

type productSeed struct {
	name  string
	brand string
	model string
	price string
	desc  string
	specs map[string]string
}

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, db, err := mongoinfra.Connect(ctx, mongoinfra.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	clientRepo := mongoinfra.NewClientRepository(db)
	productRepo := mongoinfra.NewProductRepository(db)
	userRepo := mongoinfra.NewUserRepository(db)

	if err := clientRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("client indexes failed")
	}
	if err := productRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("product indexes failed")
	}
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("password hashing failed")
	}

	for _, p := range products() {
		saved, err := productRepo.Save(ctx, &domain.Product{
			Name:           p.name,
			Brand:          p.brand,
			Model:          p.model,
			Price:          p.price,
			Description:    p.desc,
			Specifications: p.specs,
		})
		if err != nil {
			log.Fatal().Err(err).Str("product", p.name).Msg("product seed failed")
		}
		log.Info().Int64("id", saved.ID).Str("product", saved.Name).Msg("product seeded")
	}

	for _, cs := range clients() {
		seedClient(ctx, log, clientRepo, userRepo, cs, string(hash))
	}

	log.Info().Msg("seed complete")
}

func seedClient(
	ctx context.Context,
	log zerolog.Logger,
	clientRepo *mongoinfra.ClientRepository,
	userRepo *mongoinfra.UserRepository,
	cs clientSeed,
	passwordHash string,
) {
	created, err := clientRepo.Create(ctx, &domain.Client{
		Name:         cs.name,
		Email:        domain.NormalizeEmail(cs.email),
		PasswordHash: passwordHash,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	})
	if errors.Is(err, domain.ErrClientExists) {
		existing, ferr := clientRepo.FindByEmail(ctx, domain.NormalizeEmail(cs.email))
		if ferr != nil {
			log.Fatal().Err(ferr).Str("client", cs.name).Msg("client lookup failed")
		}
		created = existing
		log.Info().Str("client", cs.name).Msg("client already present")
	} else if err != nil {
		log.Fatal().Err(err).Str("client", cs.name).Msg("client seed failed")
	} else {
		log.Info().Int64("id", created.ID).Str("client", created.Name).Msg("client seeded")
	}

	for _, us := range cs.users {
		u := domain.NewUser(us.first, us.last, us.email, created.ID)
		if _, err := userRepo.Create(ctx, u); err != nil {
			if errors.Is(err, domain.ErrUserExists) {
				continue
			}
			log.Fatal().Err(err).Str("email", us.email).Msg("user seed failed")
		}
	}
	log.Info().Str("client", created.Name).Int("users", len(cs.users)).Msg("users seeded")
}

func clients() []clientSeed {
	return []clientSeed{
		{
			name:  "TechStore",
			email: "contact@techstore.example",
			users: []userSeed{
				{"John", "Doe", "john.doe@techstore.example"},
				{"Jane", "Smith", "jane.smith@techstore.example"},
				{"Pierre", "Dupont", "pierre.dupont@techstore.example"},
				{"Marie", "Lefèvre", "marie.lefevre@techstore.example"},
				{"Liam", "O'Brien", "liam.obrien@techstore.example"},
				{"Emma", "Martin", "emma.martin@techstore.example"},
			},
		},
		{
			name:  "MobileCity",
			email: "contact@mobilecity.example",
			users: []userSeed{
				{"Lucas", "Bernard", "lucas.bernard@mobilecity.example"},
				{"Chloé", "Petit", "chloe.petit@mobilecity.example"},
				{"Hugo", "Moreau", "hugo.moreau@mobilecity.example"},
				{"Léa", "Roux", "lea.roux@mobilecity.example"},
				{"Nathan", "Garnier", "nathan.garnier@mobilecity.example"},
			},
		},
		{
			name:  "PhoneZone",
			email: "contact@phonezone.example",
			users: []userSeed{
				{"Sarah", "Fournier", "sarah.fournier@phonezone.example"},
				{"Tom", "Girard", "tom.girard@phonezone.example"},
				{"Inès", "Bonnet", "ines.bonnet@phonezone.example"},
				{"Louis", "Lambert", "louis.lambert@phonezone.example"},
				{"Camille", "Rousseau", "camille.rousseau@phonezone.example"},
			},
		},
	}
}

func products() []productSeed {
	return []productSeed{
		{
			name: "iPhone 15 Pro", brand: "Apple", model: "A3102", price: "1229.00",
			desc: "Apple flagship with titanium frame and A17 Pro chip.",
			specs: map[string]string{
				"screen": "6.1\" OLED 120Hz", "storage": "256GB", "camera": "48MP triple",
			},
		},
		{
			name: "iPhone 15", brand: "Apple", model: "A3090", price: "969.00",
			desc: "Apple mainstream model with Dynamic Island.",
			specs: map[string]string{
				"screen": "6.1\" OLED", "storage": "128GB", "camera": "48MP dual",
			},
		},
		{
			name: "Galaxy S24 Ultra", brand: "Samsung", model: "SM-S928B", price: "1469.00",
			desc: "Samsung flagship with built-in S Pen.",
			specs: map[string]string{
				"screen": "6.8\" AMOLED 120Hz", "storage": "512GB", "camera": "200MP quad",
			},
		},
		{
			name: "Galaxy S24", brand: "Samsung", model: "SM-S921B", price: "899.00",
			desc: "Compact Samsung flagship.",
			specs: map[string]string{
				"screen": "6.2\" AMOLED 120Hz", "storage": "256GB", "camera": "50MP triple",
			},
		},
		{
			name: "Galaxy A55", brand: "Samsung", model: "SM-A556B", price: "489.00",
			desc: "Mid-range Samsung with metal frame.",
			specs: map[string]string{
				"screen": "6.6\" AMOLED", "storage": "128GB", "camera": "50MP triple",
			},
		},
		{
			name: "Xiaomi 14", brand: "Xiaomi", model: "23127PN0CG", price: "999.00",
			desc: "Xiaomi flagship with Leica optics.",
			specs: map[string]string{
				"screen": "6.36\" OLED 120Hz", "storage": "512GB", "camera": "50MP triple",
			},
		},
		{
			name: "Redmi Note 13 Pro", brand: "Xiaomi", model: "2312DRA50G", price: "399.00",
			desc: "Affordable Xiaomi with 200MP sensor.",
			specs: map[string]string{
				"screen": "6.67\" AMOLED 120Hz", "storage": "256GB", "camera": "200MP triple",
			},
		},
		{
			name: "OnePlus 12", brand: "OnePlus", model: "CPH2581", price: "949.00",
			desc: "OnePlus flagship with Hasselblad tuning.",
			specs: map[string]string{
				"screen": "6.82\" AMOLED 120Hz", "storage": "256GB", "camera": "50MP triple",
			},
		},
		{
			name: "OnePlus Nord 4", brand: "OnePlus", model: "CPH2663", price: "499.00",
			desc: "Metal unibody mid-ranger.",
			specs: map[string]string{
				"screen": "6.74\" AMOLED 120Hz", "storage": "256GB", "camera": "50MP dual",
			},
		},
		{
			name: "Pixel 8 Pro", brand: "Google", model: "GC3VE", price: "1099.00",
			desc: "Google flagship with Tensor G3.",
			specs: map[string]string{
				"screen": "6.7\" OLED 120Hz", "storage": "256GB", "camera": "50MP triple",
			},
		},
	}
}
