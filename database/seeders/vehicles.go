package seeders

import (
	"crypto/rand"
	"math/big"

	"gorm.io/gorm"

	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/app/models"
	"github.com/BTHGJustWin/PrinceAutomotiveGroupLLC/pkg/logger"
)

func init() {
	Register("vehicles", SeedVehicles)
}

const vinAlphabet = "ABCDEFGHJKLMNPRSTUVWXYZ0123456789"

// vinFor completes a manufacturer VIN prefix with a random serial so seeded
// rows never collide on the unique index.
func vinFor(prefix string) *string {
	suffix := make([]byte, 6)
	for i := range suffix {
		n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(vinAlphabet))))
		suffix[i] = vinAlphabet[n.Int64()]
	}
	vin := prefix + string(suffix)
	return &vin
}

// SeedVehicles loads the demo showroom when the inventory table is empty.
func SeedVehicles(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Vehicle{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	vehicles := []models.Vehicle{
		{
			Year: 2024, Make: "Mercedes-Benz", ModelName: "S-Class", Trim: "S580 4MATIC",
			VIN:           vinFor("WDD2173441A"),
			ExteriorColor: "Black", InteriorColor: "Black Leather",
			Mileage: 8200, Price: 94900, LeaseMonthly: 1389,
			RentalDaily: 299, RentalWeekly: 1799, RentalMonthly: 5999,
			BodyType: "sedan", FuelType: "Gasoline", Transmission: "Automatic",
			Engine: "4.0L V8 Biturbo", Drivetrain: "AWD",
			Description: "Flagship S580 4MATIC in Black over Black leather with the Executive Rear Seat Package.",
			Features:    models.StringList{"Burmester 4D Sound System", "Head-Up Display", "Executive Rear Seat Package", "Night Vision Assist"},
			Status:      models.VehicleAvailable, Featured: true,
		},
		{
			Year: 2024, Make: "BMW", ModelName: "760i", Trim: "xDrive",
			VIN:           vinFor("WBA73AG07R"),
			ExteriorColor: "Alpine White", InteriorColor: "Cognac Nappa Leather",
			Mileage: 5100, Price: 112500, LeaseMonthly: 1649,
			RentalDaily: 349, RentalWeekly: 2099, RentalMonthly: 6999,
			BodyType: "sedan", FuelType: "Gasoline", Transmission: "Automatic",
			Engine: "4.4L V8 TwinPower Turbo", Drivetrain: "AWD",
			Description: "760i xDrive in Alpine White with Cognac Nappa leather, Sky Lounge roof, and the BMW Theater Screen.",
			Features:    models.StringList{"Bowers & Wilkins Diamond Surround Sound", "Sky Lounge Panoramic Roof", "BMW Theater Screen", "Crystal Headlights"},
			Status:      models.VehicleAvailable, Featured: true,
		},
		{
			Year: 2023, Make: "Porsche", ModelName: "Cayenne", Trim: "Turbo GT",
			VIN:           vinFor("WP1BG2AY1P"),
			ExteriorColor: "GT Silver Metallic", InteriorColor: "Black/Alcantara",
			Mileage: 12400, Price: 149900, LeaseMonthly: 2199,
			RentalDaily: 449, RentalWeekly: 2699, RentalMonthly: 8999,
			BodyType: "suv", FuelType: "Gasoline", Transmission: "Automatic",
			Engine: "4.0L Twin-Turbo V8", Drivetrain: "AWD",
			Description: "631 HP Cayenne Turbo GT with carbon ceramic brakes and the Lightweight Sport Package.",
			Features:    models.StringList{"Sport Chrono Package", "Carbon Ceramic Brakes (PCCB)", "Sport Exhaust System", "22\" GT Design Wheels"},
			Status:      models.VehicleAvailable, Featured: true,
		},
		{
			Year: 2024, Make: "Land Rover", ModelName: "Range Rover", Trim: "Autobiography LWB",
			VIN:           vinFor("SALGS5SE5R"),
			ExteriorColor: "Santorini Black", InteriorColor: "Vintage Tan",
			Mileage: 3800, Price: 168000, LeaseMonthly: 2449,
			RentalDaily: 499, RentalWeekly: 2999, RentalMonthly: 9999,
			BodyType: "suv", FuelType: "Gasoline", Transmission: "Automatic",
			Engine: "4.4L Twin-Turbo V8", Drivetrain: "AWD",
			Description: "Long-wheelbase Autobiography in Santorini Black with executive rear seating.",
			Features:    models.StringList{"Executive Class Rear Seats", "Meridian Signature Sound", "All-Terrain Progress Control"},
			Status:      models.VehicleAvailable, Featured: true,
		},
		{
			Year: 2023, Make: "Audi", ModelName: "RS e-tron GT",
			VIN:           vinFor("WUAESFF1XP"),
			ExteriorColor: "Daytona Gray", InteriorColor: "Express Red",
			Mileage: 9700, Price: 119900, LeaseMonthly: 1749,
			RentalDaily: 379, RentalWeekly: 2299, RentalMonthly: 7499,
			BodyType: "sedan", FuelType: "Electric", Transmission: "Automatic",
			Engine: "Dual Electric Motors (637 HP)", Drivetrain: "AWD",
			Description: "Daytona Gray RS e-tron GT with Express Red interior and 637 HP of instant torque.",
			Features:    models.StringList{"Carbon Fiber Roof", "Matrix LED Headlights", "Adaptive Air Suspension"},
			Status:      models.VehicleAvailable, Featured: true,
		},
		{
			Year: 2024, Make: "Cadillac", ModelName: "Escalade", Trim: "V-Series",
			VIN:           vinFor("1GYS4CKL3R"),
			ExteriorColor: "Black Raven", InteriorColor: "Jet Black Semi-Aniline Leather",
			Mileage: 6300, Price: 139500, LeaseMonthly: 2049,
			RentalDaily: 399, RentalWeekly: 2399, RentalMonthly: 7999,
			BodyType: "suv", FuelType: "Gasoline", Transmission: "Automatic",
			Engine: "6.2L Supercharged V8 (682 HP)", Drivetrain: "AWD",
			Description: "Escalade-V with the 682 HP supercharged V8 and AKG Studio Reference audio.",
			Features:    models.StringList{"AKG Studio Reference 36-Speaker Audio", "Super Cruise", "Magnetic Ride Control"},
			Status:      models.VehicleAvailable, Featured: true,
		},
		{
			Year: 2024, Make: "Lexus", ModelName: "LC 500", Trim: "Convertible",
			VIN:           vinFor("JTHHP5BC5R"),
			ExteriorColor: "Infrared", InteriorColor: "White Semi-Aniline Leather",
			Mileage: 4200, Price: 104900, LeaseMonthly: 1529,
			RentalDaily: 329, RentalWeekly: 1999, RentalMonthly: 6499,
			BodyType: "convertible", FuelType: "Gasoline", Transmission: "Automatic",
			Engine: "5.0L Naturally Aspirated V8", Drivetrain: "RWD",
			Description: "Infrared LC 500 Convertible with a naturally aspirated V8 soundtrack.",
			Features:    models.StringList{"Mark Levinson Audio", "Climate Concierge", "Active Sport Exhaust"},
			Status:      models.VehicleAvailable,
		},
		{
			Year: 2023, Make: "Tesla", ModelName: "Model X", Trim: "Plaid",
			VIN:           vinFor("5YJXCBE20P"),
			ExteriorColor: "Ultra White", InteriorColor: "Cream Interior",
			Mileage: 11500, Price: 84900, LeaseMonthly: 1249,
			RentalDaily: 269, RentalWeekly: 1599, RentalMonthly: 5499,
			BodyType: "suv", FuelType: "Electric", Transmission: "Automatic",
			Engine: "Tri-Motor Electric (1,020 HP)", Drivetrain: "AWD",
			Description: "Model X Plaid in Ultra White with 1,020 HP and falcon-wing doors.",
			Features:    models.StringList{"Falcon Wing Doors", "Yoke Steering", "Full Self-Driving Capability"},
			Status:      models.VehicleAvailable,
		},
		{
			Year: 2024, Make: "Genesis", ModelName: "GV80 Coupe", Trim: "3.5T Sport Prestige",
			VIN:           vinFor("KMUHBDSB3R"),
			ExteriorColor: "Mauna Loa Garnet", InteriorColor: "Obsidian Black",
			Mileage: 2900, Price: 79900, LeaseMonthly: 1169,
			RentalDaily: 249, RentalWeekly: 1499, RentalMonthly: 4999,
			BodyType: "suv", FuelType: "Gasoline", Transmission: "Automatic",
			Engine: "3.5L Twin-Turbo V6", Drivetrain: "AWD",
			Description: "GV80 Coupe 3.5T Sport Prestige in Mauna Loa Garnet over Obsidian Black.",
			Features:    models.StringList{"Bang & Olufsen Audio", "Carbon Fiber Trim", "Road Preview Suspension"},
			Status:      models.VehicleAvailable,
		},
		{
			Year: 2024, Make: "Maserati", ModelName: "Grecale", Trim: "Trofeo",
			VIN:           vinFor("ZNCFAGMM3R"),
			ExteriorColor: "Grigio Maratea", InteriorColor: "Rosso Corallo Leather",
			Mileage: 7600, Price: 89500, LeaseMonthly: 1299,
			RentalDaily: 279, RentalWeekly: 1699, RentalMonthly: 5699,
			BodyType: "suv", FuelType: "Gasoline", Transmission: "Automatic",
			Engine: "3.0L Twin-Turbo V6 (523 HP)", Drivetrain: "AWD",
			Description: "Grecale Trofeo in Grigio Maratea with the Nettuno-derived twin-turbo V6.",
			Features:    models.StringList{"Sonus faber Audio", "Corsa Drive Mode", "21\" Forged Wheels"},
			Status:      models.VehicleAvailable,
		},
	}

	if err := db.Create(&vehicles).Error; err != nil {
		return err
	}

	logger.Info("seed: demo inventory created", "vehicles", len(vehicles))
	return nil
}
