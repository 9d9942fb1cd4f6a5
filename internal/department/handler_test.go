package department_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"

	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/staffdesk/staff-management/internal"
	departmentDatamodel "github.com/staffdesk/staff-management/internal/core/datamodel/department"
	employeeDatamodel "github.com/staffdesk/staff-management/internal/core/datamodel/employee"
	"github.com/staffdesk/staff-management/internal/department"
	departmentPostgres "github.com/staffdesk/staff-management/internal/department/postgres"
	"github.com/staffdesk/staff-management/internal/transport"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var _ = Describe("Department Handler Integration", func() {
	var (
		db      *gorm.DB
		repo    department.RepositoryAPI
		service *department.Service
		router  *chi.Mux
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

	mountRoutes := func(handler *department.Handler) *chi.Mux {
		r := chi.NewRouter()
		r.Route("/api/v1/departments", func(dr chi.Router) {
			dr.Get("/", handler.ListDepartments)
			dr.Post("/", handler.CreateDepartment)
			dr.Get("/{id}", handler.GetDepartment)
			dr.Put("/{id}", handler.UpdateDepartment)
			dr.Delete("/{id}", handler.DeleteDepartment)
		})
		return r
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

		repo = departmentPostgres.NewDepartmentRepository(db)
		service = department.NewService(repo, internal.DeletePolicyRestrict, slogger)
		handler := department.NewHandler(&transport.BaseHandler{Logger: slogger}, service)
		router = mountRoutes(handler)
	})

	AfterEach(func() {
		sqlDB, err := db.DB()
		Expect(err).NotTo(HaveOccurred())
		Expect(sqlDB.Close()).To(Succeed())
	})

	Describe("GET /departments", func() {
		It("returns the listing ordered by name", func() {
			Expect(repo.Create(&departmentDatamodel.Department{Code: "D1", Name: "B"})).To(Succeed())
			Expect(repo.Create(&departmentDatamodel.Department{Code: "D2", Name: "A"})).To(Succeed())

			w := doRequest(http.MethodGet, "/api/v1/departments", "")
			Expect(w.Code).To(Equal(http.StatusOK))

			var listing []department.Department
			Expect(json.NewDecoder(w.Body).Decode(&listing)).To(Succeed())
			Expect(listing).To(HaveLen(2))
			Expect(listing[0].Name).To(Equal("A"))
			Expect(listing[1].Name).To(Equal("B"))
		})

		It("returns an empty array, not null, when no rows exist", func() {
			w := doRequest(http.MethodGet, "/api/v1/departments", "")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(strings.TrimSpace(w.Body.String())).To(Equal("[]"))
		})
	})

	Describe("GET /departments/{id}", func() {
		It("returns 404 with an empty body for a missing id", func() {
			w := doRequest(http.MethodGet, "/api/v1/departments/42", "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(w.Body.Len()).To(BeZero())
		})

		It("returns 400 for a non-numeric id", func() {
			w := doRequest(http.MethodGet, "/api/v1/departments/abc", "")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("POST /departments", func() {
		It("creates a row, sets Location and echoes the representation", func() {
			w := doRequest(http.MethodPost, "/api/v1/departments",
				`{"departmentCode":"ENG","departmentName":"Engineering"}`)
			Expect(w.Code).To(Equal(http.StatusCreated))

			var created department.Department
			Expect(json.NewDecoder(w.Body).Decode(&created)).To(Succeed())
			Expect(created.ID).To(BeNumerically(">", 0))
			Expect(created.Code).To(Equal("ENG"))
			Expect(w.Header().Get("Location")).To(HavePrefix("/api/v1/departments/"))

			got := doRequest(http.MethodGet, w.Header().Get("Location"), "")
			Expect(got.Code).To(Equal(http.StatusOK))
		})

		It("returns 400 with field messages for an empty payload", func() {
			w := doRequest(http.MethodPost, "/api/v1/departments", `{}`)
			Expect(w.Code).To(Equal(http.StatusBadRequest))

			var resp internal.ErrorResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Errors).To(HaveKey("departmentCode"))
			Expect(resp.Errors).To(HaveKey("departmentName"))
		})
	})

	Describe("PUT /departments/{id}", func() {
		It("updates in place and returns 204 with no body", func() {
			dept := &departmentDatamodel.Department{Code: "ENG", Name: "Engineering"}
			Expect(repo.Create(dept)).To(Succeed())

			w := doRequest(http.MethodPut, "/api/v1/departments/1",
				`{"departmentCode":"PLT","departmentName":"Platform"}`)
			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(w.Body.Len()).To(BeZero())

			got, err := repo.GetByID(dept.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("Platform"))
		})

		It("ignores any id in the body; the path id wins", func() {
			dept := &departmentDatamodel.Department{Code: "ENG", Name: "Engineering"}
			Expect(repo.Create(dept)).To(Succeed())

			w := doRequest(http.MethodPut, "/api/v1/departments/1",
				`{"departmentId":999,"departmentCode":"PLT","departmentName":"Platform"}`)
			Expect(w.Code).To(Equal(http.StatusNoContent))

			got, err := repo.GetByID(dept.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Code).To(Equal("PLT"))
		})

		It("returns 404 for a missing id", func() {
			w := doRequest(http.MethodPut, "/api/v1/departments/42",
				`{"departmentCode":"PLT","departmentName":"Platform"}`)
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("DELETE /departments/{id}", func() {
		It("returns 204 when a row was removed and 404 when repeated", func() {
			dept := &departmentDatamodel.Department{Code: "ENG", Name: "Engineering"}
			Expect(repo.Create(dept)).To(Succeed())

			w := doRequest(http.MethodDelete, "/api/v1/departments/1", "")
			Expect(w.Code).To(Equal(http.StatusNoContent))

			w = doRequest(http.MethodDelete, "/api/v1/departments/1", "")
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 409 under the restrict policy when employees remain", func() {
			dept := &departmentDatamodel.Department{Code: "ENG", Name: "Engineering"}
			Expect(repo.Create(dept)).To(Succeed())
			emp := &employeeDatamodel.Employee{
				FirstName: "Ayu", LastName: "Lestari", Email: "ayu@example.com",
				Salary: 1, DepartmentID: dept.ID,
			}
			Expect(db.Create(emp).Error).To(Succeed())

			w := doRequest(http.MethodDelete, "/api/v1/departments/1", "")
			Expect(w.Code).To(Equal(http.StatusConflict))

			var resp internal.ErrorResponse
			Expect(json.NewDecoder(w.Body).Decode(&resp)).To(Succeed())
			Expect(resp.Code).To(Equal(internal.ErrCodeDepartmentInUse))
		})
	})
})
