package handlers

import (
	"github.com/jmoiron/sqlx"

	"github.com/PePetrov96/epicbyte/internal/config"
	"github.com/PePetrov96/epicbyte/internal/images"
	"github.com/PePetrov96/epicbyte/internal/repos"
	"github.com/PePetrov96/epicbyte/internal/services"
)

type Deps struct {
	HomeHandler       *HomeHandler
	UserHandler       *UserHandler
	ProductHandler    *ProductHandler
	CartHandler       *CartHandler
	SubscriberHandler *SubscriberHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	userRepo := repos.NewUserRepo(db)
	prodRepo := repos.NewProductRepo(db)
	cartRepo := repos.NewCartRepo(db)
	subRepo := repos.NewSubscriberRepo(db)

	imgStore := images.NewDiskStore(cfg.MediaDir)

	userSvc := services.NewUserService(userRepo)
	prodSvc := services.NewProductService(prodRepo, imgStore)
	cartSvc := services.NewCartService(cartRepo, prodRepo)
	subSvc := services.NewSubscriberService(subRepo)

	return &Deps{
		HomeHandler:       &HomeHandler{Products: prodSvc},
		UserHandler:       &UserHandler{Users: userSvc, Auth: auth},
		ProductHandler:    &ProductHandler{Products: prodSvc},
		CartHandler:       &CartHandler{Cart: cartSvc},
		SubscriberHandler: &SubscriberHandler{Subscribers: subSvc},
	}
}
