package employee_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/staffdesk/staff-management/internal"
	departmentDatamodel "github.com/staffdesk/staff-management/internal/core/datamodel/department"
	employeeDatamodel "github.com/staffdesk/staff-management/internal/core/datamodel/employee"
	"github.com/staffdesk/staff-management/internal/employee"
	employeePostgres "github.com/staffdesk/staff-management/internal/employee/postgres"
	"github.com/staffdesk/staff-management/internal/transport"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Employee Handler Integration", func() {
	var (
		db     *gorm.DB
		router *chi.Mux
		deptID int64
	)

	doRequest := func(method, target, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body == "" {
			req = httptest.NewRequest(method, target, nil)
		} else {
			req = httptest.NewRequest(method, target, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	seedEmployee := func(first, last, email string, departmentID int64) *employeeDatamodel.Employee {
		emp := &employeeDatamodel.Employee{
			FirstName:    first,
			LastName:     last,
			Email:        email,
			DOB:          time.Date(1990, time.May, 20, 0, 0, 0, 0, time.UTC),
			Salary:       55000,
			DepartmentID: departmentID,
		}
		Expect(db.Create(emp).Error).To(Succeed())
		return emp
	}

	BeforeEach(func() {
		var err error
		slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(&departmentDatamodel.Department{}, &employeeDatamodel.Employee{})
		Expect(err).NotTo(HaveOccurred())

		dept := &departmentDatamodel.Department{Code: "ENG", Name: "Engineering"}
		Expect(db.Create(dept).Error).To(Succeed())
		deptID = dept.ID

		repo := employeePostgres.NewEmployeeRepository(db)
		service := employee.NewService(repo, slogger)
		handler := employee.NewHandler(&transport.BaseHandler{Logger: slogger}, service)

		router = chi.NewRouter()
		router.Route("/api/v1/employees", func(er chi.Router) {
			er.Get("/", handler.ListEmployees)
			er.Post("/", handler.CreateEmployee)
			er.Get("/{id}", handler.GetEmployee)
			er.Put("/{id}", handler.UpdateEmployee)
			er.Delete("/{id}", handler.DeleteEmployee)
		})
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("GET /employees", func() {
		It("returns the listing ordered by first then last name, with join fields", func() {
			seedEmployee("Budi", "Santoso", "b@example.com", deptID)
			seedEmployee("Ayu", "Wijaya", "aw@example.com", deptID)
			seedEmployee("Ayu", "Lestari", "al@example.com", deptID)

			w := doRequest(http.MethodGet, "/api/v1/employees", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var listing []employee.Employee
			Expect(json.NewDecoder(w.Body).Decode(&listing)).To(Succeed())
			Expect(listing).To(HaveLen(3))
			Expect(listing[0].LastName).To(Equal("Lestari"))
			Expect(listing[1].LastName).To(Equal("Wijaya"))
			Expect(listing[2].FirstName).To(Equal("Budi"))
			Expect(*listing[0].DepartmentName).To(Equal("Engineering"))
		})

		It("returns an empty array, not null, when no rows exist", func() {
			w := doRequest(http.MethodGet, "/api/v1/employees", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(strings.TrimSpace(w.Body.String())).To(Equal("[]"))
		})

		It("serves employees with a dangling department reference", func() {
			seedEmployee("Citra", "Wijaya", "c@example.com", 999)

			w := doRequest(http.MethodGet, "/api/v1/employees", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var listing []employee.Employee
			Expect(json.NewDecoder(w.Body).Decode(&listing)).To(Succeed())
			Expect(listing).To(HaveLen(1))
			Expect(listing[0].DepartmentName).To(BeNil())
			Expect(listing[0].DepartmentCode).To(BeNil())
		})
	})

	Describe("GET /employees/{id}", func() {
		It("derives age from dob on every read", func() {
			emp := seedEmployee("Ayu", "Lestari", "ayu@example.com", deptID)

			w := doRequest(http.MethodGet, "/api/v1/employees/1", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var got employee.Employee
			Expect(json.NewDecoder(w.Body).Decode(&got)).To(Succeed())
			Expect(got.Age).To(Equal(employee.AgeAt(emp.DOB, time.Now())))
			Expect(got.DOB.Year()).To(Equal(1990))
		})

		It("returns 404 with an empty body for a missing id", func() {
			w := doRequest(http.MethodGet, "/api/v1/employees/42", "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.Len()).To(BeZero())
		})

		It("returns 400 for a non-numeric id", func() {
			w := doRequest(http.MethodGet, "/api/v1/employees/abc", "")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST /employees", func() {
		validBody := func() string {
			return `{"firstName":"Dewi","lastName":"Pratama","email":"dewi@example.com",` +
				`"dob":"1995-06-15","salary":64000,"departmentId":1}`
		}

		It("creates a row, sets Location and returns the joined representation", func() {
			w := doRequest(http.MethodPost, "/api/v1/employees", validBody())
			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(w.Header().Get("Location")).To(HavePrefix("/api/v1/employees/"))

			var created employee.Employee
			Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
			Expect(created.ID).To(BeNumerically(">", 0))
			Expect(created.Age).To(BeNumerically(">", 0))
			Expect(*created.DepartmentName).To(Equal("Engineering"))
			Expect(*created.DepartmentCode).To(Equal("ENG"))
		})

		It("returns 400 with field messages for an empty payload", func() {
			w := doRequest(http.MethodPost, "/api/v1/employees", `{}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var resp internal.ErrorResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Errors).To(HaveKey("firstName"))
			Expect(resp.Errors).To(HaveKey("lastName"))
			Expect(resp.Errors).To(HaveKey("email"))
			Expect(resp.Errors).To(HaveKey("dob"))
			Expect(resp.Errors).To(HaveKey("salary"))
			Expect(resp.Errors).To(HaveKey("departmentId"))
		})

		It("rejects a negative salary and persists nothing", func() {
			body := strings.Replace(validBody(), `"salary":64000`, `"salary":-1`, 1)
			w := doRequest(http.MethodPost, "/api/v1/employees", body)
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var resp internal.ErrorResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Errors).To(HaveKey("salary"))

			var count int64
			Expect(db.Model(&employeeDatamodel.Employee{}).Count(&count).Error).To(Succeed())
			Expect(count).To(BeZero())
		})

		It("accepts a salary of exactly zero", func() {
			body := strings.Replace(validBody(), `"salary":64000`, `"salary":0`, 1)
			w := doRequest(http.MethodPost, "/api/v1/employees", body)
			Expect(w.Code).To(Equal(http.StatusCreated))
		})

		It("rejects a malformed email", func() {
			body := strings.Replace(validBody(), "dewi@example.com", "not-an-email", 1)
			w := doRequest(http.MethodPost, "/api/v1/employees", body)
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var resp internal.ErrorResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Errors).To(HaveKey("email"))
		})

		It("rejects an unparseable dob", func() {
			body := strings.Replace(validBody(), "1995-06-15", "15/06/1995", 1)
			w := doRequest(http.MethodPost, "/api/v1/employees", body)
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var resp internal.ErrorResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Errors).To(HaveKey("dob"))
		})
	})

	Describe("PUT /employees/{id}", func() {
		It("overwrites all mutable fields and returns 204 with no body", func() {
			seedEmployee("Ayu", "Lestari", "ayu@example.com", deptID)

			w := doRequest(http.MethodPut, "/api/v1/employees/1",
				`{"firstName":"Ayu","lastName":"Pratama","email":"ayu.p@example.com",`+
					`"dob":"1990-05-20","salary":80000,"departmentId":1}`)
			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(w.Body.Len()).To(BeZero())

			got := doRequest(http.MethodGet, "/api/v1/employees/1", "")
			var updated employee.Employee
			Expect(json.NewDecoder(got.Body).Decode(&updated)).To(Succeed())
			Expect(updated.LastName).To(Equal("Pratama"))
			Expect(updated.Salary).To(Equal(80000.0))
		})

		It("returns 404 for a missing id", func() {
			w := doRequest(http.MethodPut, "/api/v1/employees/42",
				`{"firstName":"A","lastName":"B","email":"a@example.com",`+
					`"dob":"1990-05-20","salary":1,"departmentId":1}`)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DELETE /employees/{id}", func() {
		It("returns 204 when a row was removed and 404 when repeated", func() {
			seedEmployee("Ayu", "Lestari", "ayu@example.com", deptID)

			w := doRequest(http.MethodDelete, "/api/v1/employees/1", "")
			Expect(w.Code).To(Equal(http.StatusNoContent))

			w = doRequest(http.MethodDelete, "/api/v1/employees/1", "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})
})
