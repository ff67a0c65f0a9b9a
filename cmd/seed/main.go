package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"travelhub/internal/database"
	"travelhub/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	db, err := database.Connect("travelhub.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.PasswordResetToken{},
		&domain.Destination{},
		&domain.Flight{},
		&domain.Hotel{},
		&domain.Car{},
		&domain.Booking{},
		&domain.Post{},
		&domain.PostLike{},
		&domain.PostBookmark{},
		&domain.Group{},
		&domain.GroupMember{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM group_members")
	db.Exec("DELETE FROM post_bookmarks")
	db.Exec("DELETE FROM post_likes")
	db.Exec("DELETE FROM posts")
	db.Exec("DELETE FROM groups")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM cars")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM flights")
	db.Exec("DELETE FROM destinations")
	db.Exec("DELETE FROM password_reset_tokens")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@travelhub.io",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Admin",
		Preferences:  domain.DefaultPreferences(),
		IsVerified:   true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@travelhub.io / admin123")

	users := []domain.User{}
	userEmails := []string{"maria@gmail.com", "james@outlook.com", "yuki@yahoo.co.jp"}
	for i, email := range userEmails {
		hash, _ := bcrypt.GenerateFromPassword([]byte("travel123"), bcrypt.DefaultCost)
		u := domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         domain.RoleUser,
			Name:         fmt.Sprintf("Traveler %d", i+1),
			Phone:        fmt.Sprintf("+1 555 010 %04d", i+1),
			Preferences:  domain.DefaultPreferences(),
			IsVerified:   true,
		}
		db.Create(&u)
		users = append(users, u)
	}

	// ================== DESTINATIONS ==================
	log.Println("Creating destinations...")
	destinations := []domain.Destination{
		{
			Name:              "Santorini",
			Description:       "Whitewashed villages above the caldera",
			Country:           "Greece",
			City:              "Thira",
			Category:          domain.CategoryBeach,
			Images:            []string{"/static/destinations/santorini.jpg"},
			AverageRating:     4.8,
			TotalReviews:      2210,
			PopularActivities: []string{"sailing", "wine tasting", "sunset watching"},
			BestTimeToVisit:   "May to October",
			EstimatedBudget:   &domain.BudgetEstimate{Budget: 900, Luxury: 3200},
			IsActive:          true,
		},
		{
			Name:              "Kyoto",
			Description:       "Temples, gardens and old-town streets",
			Country:           "Japan",
			City:              "Kyoto",
			Category:          domain.CategoryCultural,
			Images:            []string{"/static/destinations/kyoto.jpg"},
			AverageRating:     4.9,
			TotalReviews:      3105,
			PopularActivities: []string{"temple visits", "tea ceremony"},
			BestTimeToVisit:   "March to May",
			EstimatedBudget:   &domain.BudgetEstimate{Budget: 1100, Luxury: 2800},
			IsActive:          true,
		},
		{
			Name:              "Chamonix",
			Description:       "Alpine skiing below Mont Blanc",
			Country:           "France",
			City:              "Chamonix",
			Category:          domain.CategoryMountain,
			Images:            []string{"/static/destinations/chamonix.jpg"},
			AverageRating:     4.6,
			TotalReviews:      1480,
			PopularActivities: []string{"skiing", "hiking", "paragliding"},
			BestTimeToVisit:   "December to April",
			EstimatedBudget:   &domain.BudgetEstimate{Budget: 1400, Luxury: 4500},
			IsActive:          true,
		},
		{
			Name:              "Marrakech",
			Description:       "Souks, riads and the medina",
			Country:           "Morocco",
			City:              "Marrakech",
			Category:          domain.CategoryCity,
			Images:            []string{"/static/destinations/marrakech.jpg"},
			AverageRating:     4.4,
			TotalReviews:      980,
			PopularActivities: []string{"market tours", "desert trips"},
			BestTimeToVisit:   "October to April",
			EstimatedBudget:   &domain.BudgetEstimate{Budget: 600, Luxury: 2000},
			IsActive:          true,
		},
		{
			Name:              "Queenstown",
			Description:       "Bungee jumps, jet boats and fjords",
			Country:           "New Zealand",
			City:              "Queenstown",
			Category:          domain.CategoryAdventure,
			Images:            []string{"/static/destinations/queenstown.jpg"},
			AverageRating:     4.7,
			TotalReviews:      1720,
			PopularActivities: []string{"bungee jumping", "hiking"},
			BestTimeToVisit:   "December to February",
			IsActive:          true,
		},
		{
			Name:              "Bali",
			Description:       "Rice terraces, surf and spa retreats",
			Country:           "Indonesia",
			City:              "Ubud",
			Category:          domain.CategoryRelaxation,
			Images:            []string{"/static/destinations/bali.jpg"},
			AverageRating:     4.5,
			TotalReviews:      2650,
			PopularActivities: []string{"yoga", "surfing", "spa"},
			BestTimeToVisit:   "April to October",
			EstimatedBudget:   &domain.BudgetEstimate{Budget: 500, Luxury: 1800},
			IsActive:          true,
		},
	}
	for i := range destinations {
		db.Create(&destinations[i])
	}

	// ================== FLIGHTS ==================
	log.Println("Creating flights...")
	routes := []struct {
		airline, number                                string
		fromAirport, fromCity, fromCountry             string
		toAirport, toCity, toCountry                   string
		duration                                       string
		economy, business                              float64
	}{
		{"Aegean Airlines", "A3 871", "JFK", "New York", "USA", "JTR", "Santorini", "Greece", "11h 40m", 640, 1850},
		{"Aegean Airlines", "A3 872", "JTR", "Santorini", "Greece", "JFK", "New York", "USA", "12h 10m", 655, 1890},
		{"ANA", "NH 9", "JFK", "New York", "USA", "KIX", "Osaka", "Japan", "14h 05m", 820, 2600},
		{"ANA", "NH 10", "KIX", "Osaka", "Japan", "JFK", "New York", "USA", "13h 20m", 810, 2550},
		{"Air France", "AF 23", "JFK", "New York", "USA", "GVA", "Geneva", "Switzerland", "7h 45m", 520, 1500},
		{"Air France", "AF 24", "GVA", "Geneva", "Switzerland", "JFK", "New York", "USA", "8h 30m", 540, 1550},
	}
	for i, rt := range routes {
		depart := time.Now().AddDate(0, 0, 7+i).Truncate(24 * time.Hour).Add(time.Duration(8+i) * time.Hour)
		f := domain.Flight{
			Airline:      rt.airline,
			FlightNumber: rt.number,
			Departure: domain.FlightEndpoint{
				Airport: rt.fromAirport, City: rt.fromCity, Country: rt.fromCountry, DateTime: depart,
			},
			Arrival: domain.FlightEndpoint{
				Airport: rt.toAirport, City: rt.toCity, Country: rt.toCountry, DateTime: depart.Add(12 * time.Hour),
			},
			Duration:       rt.duration,
			Price:          domain.FlightPricing{Economy: rt.economy, Business: rt.business},
			AvailableSeats: domain.SeatInventory{Economy: 120 + rand.Intn(60), Business: 16, First: 4},
			Aircraft:       "Airbus A330",
			Amenities:      []string{"wifi", "meals", "entertainment"},
			IsActive:       true,
		}
		db.Create(&f)
	}

	// ================== HOTELS ==================
	log.Println("Creating hotels...")
	hotels := []domain.Hotel{
		{
			Name:        "Caldera View Suites",
			Description: "Cliffside suites with private plunge pools",
			Location: domain.HotelLocation{
				Address: "Oia Main Street 12", City: "Santorini", Country: "Greece",
			},
			PricePerNight: domain.RoomPricing{Standard: 240, Deluxe: 380, Suite: 620},
			TotalRooms:    domain.RoomInventory{Standard: 18, Deluxe: 10, Suite: 4},
			Amenities:     []string{"pool", "breakfast", "wifi"},
			Images:        []string{"/static/hotels/caldera.jpg"},
			Rating:        4.8,
			TotalReviews:  640,
			CheckInTime:   "15:00",
			CheckOutTime:  "11:00",
			IsActive:      true,
		},
		{
			Name:        "Gion Machiya Inn",
			Description: "Restored townhouse near the geisha district",
			Location: domain.HotelLocation{
				Address: "Gion-machi 4-2", City: "Kyoto", Country: "Japan",
			},
			PricePerNight: domain.RoomPricing{Standard: 180, Deluxe: 260},
			TotalRooms:    domain.RoomInventory{Standard: 12, Deluxe: 6},
			Amenities:     []string{"onsen", "breakfast", "wifi"},
			Images:        []string{"/static/hotels/gion.jpg"},
			Rating:        4.9,
			TotalReviews:  420,
			CheckInTime:   "16:00",
			CheckOutTime:  "10:00",
			IsActive:      true,
		},
		{
			Name:        "Mont Blanc Lodge",
			Description: "Ski-in lodge with mountain views",
			Location: domain.HotelLocation{
				Address: "Route des Pelerins 77", City: "Chamonix", Country: "France",
			},
			PricePerNight: domain.RoomPricing{Standard: 210, Deluxe: 330, Suite: 540},
			TotalRooms:    domain.RoomInventory{Standard: 24, Deluxe: 12, Suite: 6},
			Amenities:     []string{"spa", "ski storage", "restaurant"},
			Images:        []string{"/static/hotels/montblanc.jpg"},
			Rating:        4.6,
			TotalReviews:  510,
			CheckInTime:   "15:00",
			CheckOutTime:  "11:00",
			IsActive:      true,
		},
	}
	for i := range hotels {
		db.Create(&hotels[i])
	}

	// ================== CARS ==================
	log.Println("Creating cars...")
	cars := []domain.Car{
		{
			Make: "Toyota", Model: "Yaris", Year: 2024, Category: domain.CarEconomy,
			PricePerDay: 38,
			Location:    domain.CarLocation{City: "Santorini", Country: "Greece"},
			Features:    []string{"air conditioning", "bluetooth"},
			FuelType:    "petrol", Transmission: "manual", Seats: 5, IsActive: true,
		},
		{
			Make: "Subaru", Model: "Outback", Year: 2023, Category: domain.CarSUV,
			PricePerDay: 85,
			Location:    domain.CarLocation{City: "Queenstown", Country: "New Zealand"},
			Features:    []string{"all wheel drive", "roof rack"},
			FuelType:    "petrol", Transmission: "automatic", Seats: 5, IsActive: true,
		},
		{
			Make: "BMW", Model: "4 Series Convertible", Year: 2024, Category: domain.CarConvertible,
			PricePerDay: 160,
			Location:    domain.CarLocation{City: "Marrakech", Country: "Morocco"},
			Features:    []string{"leather seats", "navigation"},
			FuelType:    "petrol", Transmission: "automatic", Seats: 4, IsActive: true,
		},
		{
			Make: "Renault", Model: "Clio", Year: 2023, Category: domain.CarCompact,
			PricePerDay: 42,
			Location:    domain.CarLocation{City: "Chamonix", Country: "France"},
			Features:    []string{"snow tires", "heated seats"},
			FuelType:    "diesel", Transmission: "manual", Seats: 5, IsActive: true,
		},
	}
	for i := range cars {
		db.Create(&cars[i])
	}

	// ================== COMMUNITY ==================
	log.Println("Creating groups and posts...")
	groups := []domain.Group{
		{Name: "Solo Travelers", Description: "Tips and meetups for traveling alone", Category: "general", MemberCount: 0},
		{Name: "Budget Backpackers", Description: "Stretching every dollar on the road", Category: "budget", MemberCount: 0},
		{Name: "Mountain Addicts", Description: "Trails, peaks and ski seasons", Category: "adventure", MemberCount: 0},
	}
	for i := range groups {
		db.Create(&groups[i])
	}

	postTitles := []string{
		"Two weeks in Japan on $1500",
		"Best sunset spots in Santorini",
		"Chamonix off-season is underrated",
	}
	postBodies := []string{
		"Full breakdown of where I stayed, what I ate and how I moved between cities.",
		"Skip the crowded castle viewpoint, walk ten minutes further along the caldera trail.",
		"June hiking with empty trails and half-price lodges. Here is my route.",
	}
	for i := range postTitles {
		p := domain.Post{
			AuthorID: users[i%len(users)].ID,
			Title:    postTitles[i],
			Content:  postBodies[i],
			Tags:     []string{"tips"},
			Likes:    rand.Intn(40),
			Comments: rand.Intn(12),
		}
		db.Create(&p)
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Println("Admin: admin@travelhub.io / admin123")
	log.Println("Users: maria@gmail.com, james@outlook.com, yuki@yahoo.co.jp / travel123")
}
