package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	departmentDatamodel "github.com/staffdesk/staff-management/internal/core/datamodel/department"
	employeeDatamodel "github.com/staffdesk/staff-management/internal/core/datamodel/employee"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	_ "github.com/jackc/pgx/v5/stdlib"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample departments and employees for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlxDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer sqlxDB.Close()

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlxDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to open gorm: %v", err)
		}

		if clearData {
			if err := db.Exec("DELETE FROM employees").Error; err != nil {
				log.Fatalf("failed to clear employees: %v", err)
			}
			if err := db.Exec("DELETE FROM departments").Error; err != nil {
				log.Fatalf("failed to clear departments: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		departments := []*departmentDatamodel.Department{
			{Code: "ENG", Name: "Engineering"},
			{Code: "FIN", Name: "Finance"},
			{Code: "HR", Name: "Human Resources"},
		}

		byCode := make(map[string]int64)
		for _, d := range departments {
			var existing departmentDatamodel.Department
			err := db.Where("code = ?", d.Code).First(&existing).Error
			if err == nil {
				fmt.Printf("department %s already exists\n", d.Code)
				byCode[d.Code] = existing.ID
				continue
			}
			if err != gorm.ErrRecordNotFound {
				log.Fatalf("failed to check department %s: %v", d.Code, err)
			}
			if err := db.Create(d).Error; err != nil {
				log.Fatalf("failed to insert department %s: %v", d.Code, err)
			}
			byCode[d.Code] = d.ID
			fmt.Printf("Seeded department: %s (%s)\n", d.Name, d.Code)
		}

		date := func(y int, m time.Month, d int) time.Time {
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		}

		employees := []*employeeDatamodel.Employee{
			{FirstName: "Ayu", LastName: "Lestari", Email: "ayu.lestari@example.com", DOB: date(1992, time.March, 14), Salary: 72000, DepartmentID: byCode["ENG"]},
			{FirstName: "Budi", LastName: "Santoso", Email: "budi.santoso@example.com", DOB: date(1988, time.November, 2), Salary: 86000, DepartmentID: byCode["ENG"]},
			{FirstName: "Citra", LastName: "Wijaya", Email: "citra.wijaya@example.com", DOB: date(1995, time.June, 15), Salary: 64000, DepartmentID: byCode["FIN"]},
			{FirstName: "Dewi", LastName: "Pratama", Email: "dewi.pratama@example.com", DOB: date(1990, time.January, 28), Salary: 58000, DepartmentID: byCode["HR"]},
		}

		for _, e := range employees {
			var count int64
			if err := db.Model(&employeeDatamodel.Employee{}).Where("email = ?", e.Email).Count(&count).Error; err != nil {
				log.Fatalf("failed to check employee %s: %v", e.Email, err)
			}
			if count > 0 {
				fmt.Printf("employee %s already exists\n", e.Email)
				continue
			}
			if err := db.Create(e).Error; err != nil {
				log.Fatalf("failed to insert employee %s: %v", e.Email, err)
			}
			fmt.Printf("Seeded employee: %s %s\n", e.FirstName, e.LastName)
		}

		fmt.Println("Seeding complete")
	},
}
