// Command seed fills a development database with shops, catalog entries
// and bookings in every lifecycle state.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"time"

	"shopsphere/config"
	"shopsphere/database"
	bookingRepo "shopsphere/database/repository/booking"
	catalogRepo "shopsphere/database/repository/catalog"
	shopRepo "shopsphere/database/repository/shop"
	"shopsphere/models"
	"shopsphere/services/booking"
	"shopsphere/services/catalog"
	"shopsphere/services/otp"
	"shopsphere/services/shop"
	"shopsphere/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

var serviceMenu = []struct {
	Name  string
	Price float64
}{
	{"Haircut", 25},
	{"Beard trim", 12},
	{"Hair colouring", 60},
	{"Manicure", 30},
}

func main() {
	shopCount := flag.Int("shops", 6, "number of shops to create")
	wipe := flag.Bool("wipe", true, "clear existing shops, services and bookings first")
	flag.Parse()

	config.LoadConfig()
	if config.IsProduction() {
		fmt.Println("refusing to seed a production database")
		return
	}
	logger := utils.GetLogger()
	database.InitDB()
	defer database.Disconnect(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if *wipe {
		for _, name := range []string{"shops", "services", "bookings"} {
			if _, err := database.DB().Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
				logger.Fatal("failed to clear collection", zap.String("collection", name), zap.Error(err))
			}
		}
	}

	shops := shop.NewShopService(shopRepo.NewMongoShopRepo(), nil, logger)
	menu := catalog.NewCatalogService(catalogRepo.NewMongoServiceRepo(), logger)
	bookings := booking.NewBookingService(bookingRepo.NewMongoBookingRepo(), otp.NewGenerator(nil), booking.SystemClock{}, logger)

	for i := 1; i <= *shopCount; i++ {
		s, err := shops.CreateShop(ctx, fmt.Sprintf("owner-%d", i), models.ShopInput{
			Name:    fmt.Sprintf("Seed Shop %d", i),
			Address: fmt.Sprintf("%d Market Street", 10*i),
		})
		if err != nil {
			logger.Fatal("failed to create shop", zap.Error(err))
		}
		// every third shop is hidden by an admin
		if i%3 == 0 {
			if _, err := shops.ToggleActive(ctx, s.ID, true); err != nil {
				logger.Fatal("failed to hide shop", zap.Error(err))
			}
		}

		for _, item := range serviceMenu {
			if _, err := menu.AddService(ctx, s.ID, item.Name, item.Price); err != nil {
				logger.Fatal("failed to add service", zap.Error(err))
			}
		}

		seedBookings(ctx, bookings, s.ID, i)
	}
	logger.Info("seed complete", zap.Int("shops", *shopCount))
}

// seedBookings leaves one booking in each lifecycle state.
func seedBookings(ctx context.Context, svc booking.BookingService, shopID string, n int) {
	logger := utils.GetLogger()
	create := func() *models.Booking {
		item := serviceMenu[rand.IntN(len(serviceMenu))]
		b, err := svc.Create(ctx, models.BookingInput{
			UserID:  fmt.Sprintf("user-%d", rand.IntN(5)+1),
			ShopID:  shopID,
			Service: item.Name,
			Price:   item.Price,
		})
		if err != nil {
			logger.Fatal("failed to create booking", zap.Error(err))
		}
		return b
	}
	must := func(err error) {
		if err != nil {
			logger.Fatal("failed to seed booking transition", zap.Int("shop", n), zap.Error(err))
		}
	}

	create()

	accepted := create()
	_, err := svc.Accept(ctx, accepted.ID)
	must(err)

	must(svc.Reject(ctx, create().ID))
	must(svc.Cancel(ctx, create().ID))

	done := create()
	code, err := svc.Accept(ctx, done.ID)
	must(err)
	must(svc.Complete(ctx, done.ID, code, code, done.Price))
}
