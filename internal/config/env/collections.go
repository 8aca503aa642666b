package envconfig

import (
	"github.com/caarlos0/env/v11"

	"github.com/ValoreSposi/crm-backend/internal/model"
)

type collectionsEnv struct {
	Stock         string `env:"MONGO_COLLECTION_STOCK" envDefault:"nuovaGiacenza"`
	Product       string `env:"MONGO_COLLECTION_PRODUCT" envDefault:"prodottis"`
	Category      string `env:"MONGO_COLLECTION_CATEGORY" envDefault:"categoriaprodottis"`
	Brand         string `env:"MONGO_COLLECTION_BRAND" envDefault:"marcaprodottis"`
	Type          string `env:"MONGO_COLLECTION_TYPE" envDefault:"tipologiaprodottis"`
	Model         string `env:"MONGO_COLLECTION_MODEL" envDefault:"modelloprodottis"`
	Color         string `env:"MONGO_COLLECTION_COLOR" envDefault:"coloreprodottis"`
	Size          string `env:"MONGO_COLLECTION_SIZE" envDefault:"tagliaclientes"`
	Warehouse     string `env:"MONGO_COLLECTION_WAREHOUSE" envDefault:"magazzinis"`
	Supplier      string `env:"MONGO_COLLECTION_SUPPLIER" envDefault:"fornitoris"`
	LoadRecord    string `env:"MONGO_COLLECTION_LOAD_RECORD" envDefault:"caricoscaricos"`
	Client        string `env:"MONGO_COLLECTION_CLIENT" envDefault:"clientes"`
	Appointment   string `env:"MONGO_COLLECTION_APPOINTMENT" envDefault:"appuntamentos"`
	Atelier       string `env:"MONGO_COLLECTION_ATELIER" envDefault:"ateliers"`
	Employee      string `env:"MONGO_COLLECTION_EMPLOYEE" envDefault:"users"`
	ClientProduct string `env:"MONGO_COLLECTION_CLIENT_PRODUCT" envDefault:"prodotticlientes"`
}

type collections struct {
	raw collectionsEnv
}

func NewCollectionsConfig() (*collections, error) {
	var raw collectionsEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &collections{raw: raw}, nil
}

func (cfg *collections) Collections() model.Collections {
	return model.Collections(cfg.raw)
}
