package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/handler/dto"
	hmocks "github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/handler/mocks"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/jobs"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/middleware"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/router"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"gorm.io/datatypes"
)

const (
	testUserHeader = "X-Test-User"
	testRoleHeader = "X-Test-Role"
)

type testEnv struct {
	tours         *hmocks.MockTourSvc
	bookings      *hmocks.MockBookingSvc
	users         *hmocks.MockUserSvc
	catalog       *hmocks.MockCatalogSvc
	notifications *hmocks.MockNotificationLogSvc
	jobs          *hmocks.MockJobRunner
	router        http.Handler
}

// fakeAuth trusts test headers instead of a bearer token.
func fakeAuth(c *ginext.Context) {
	userID := c.GetHeader(testUserHeader)
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing bearer token"})
		return
	}
	roles := []string{domain.RoleCustomer}
	if role := c.GetHeader(testRoleHeader); role != "" {
		roles = append(roles, role)
	}
	middleware.SetActor(c, userID, roles...)
	c.Next()
}

func setupRouter(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		tours:         hmocks.NewMockTourSvc(t),
		bookings:      hmocks.NewMockBookingSvc(t),
		users:         hmocks.NewMockUserSvc(t),
		catalog:       hmocks.NewMockCatalogSvc(t),
		notifications: hmocks.NewMockNotificationLogSvc(t),
		jobs:          hmocks.NewMockJobRunner(t),
	}

	h := NewHandler(env.tours, env.bookings, env.users, env.catalog, env.notifications, env.jobs)
	env.router = router.InitRouter("test", h, fakeAuth)

	return env
}

func do(r http.Handler, method, path string, body any, userID string, admin bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(testUserHeader, userID)
	}
	if admin {
		req.Header.Set(testRoleHeader, domain.RoleAdmin)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleTour() *domain.Tour {
	return &domain.Tour{
		ID:              uuid.New().String(),
		Name:            "Komodo Sailing",
		Destination:     "Flores",
		Price:           decimal.NewFromInt(150),
		MaxParticipants: 10,
		StartDate:       datatypes.Date(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)),
		EndDate:         datatypes.Date(time.Date(2026, 12, 4, 0, 0, 0, 0, time.UTC)),
	}
}

// --- Tours ---

func TestHandler_ListTours_Success(t *testing.T) {
	env := setupRouter(t)

	tour := sampleTour()
	env.tours.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f domain.TourFilter) bool {
			return f.Destination == "Flores" && f.Limit == 5 && f.Offset == 10
		})).
		Return([]*domain.Tour{tour}, int64(11), nil)

	w := do(env.router, http.MethodGet, "/api/tours?destination=Flores&limit=5&offset=10", nil, "", false)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ListResponse[dto.TourResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "150.00", resp.Items[0].Price)
	assert.Equal(t, "2026-12-01", resp.Items[0].StartDate)
	assert.Equal(t, 10, resp.Items[0].AvailableSeats)
}

func TestHandler_GetTour_InvalidID(t *testing.T) {
	env := setupRouter(t)

	w := do(env.router, http.MethodGet, "/api/tours/bad-id", nil, "", false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetTour_NotFound(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	env.tours.EXPECT().GetDetails(mock.Anything, id).Return(nil, domain.ErrTourNotFound)

	w := do(env.router, http.MethodGet, "/api/tours/"+id, nil, "", false)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_CreateTour_RequiresAdmin(t *testing.T) {
	env := setupRouter(t)

	w := do(env.router, http.MethodPost, "/api/admin/tours", []byte(`{}`), uuid.New().String(), false)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(env.router, http.MethodPost, "/api/admin/tours", []byte(`{}`), "", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateTour_Success(t *testing.T) {
	env := setupRouter(t)

	tour := sampleTour()
	env.tours.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(in domain.TourInput) bool {
			return in.Name == "Komodo Sailing" &&
				in.Price.Equal(decimal.NewFromInt(150)) &&
				in.StartDate.Equal(time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC))
		})).
		Return(tour, nil)

	body := []byte(`{"name":"Komodo Sailing","destination":"Flores","price":"150","max_participants":10,` +
		`"start_date":"2026-12-01","end_date":"2026-12-04"}`)
	w := do(env.router, http.MethodPost, "/api/admin/tours", body, uuid.New().String(), true)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestHandler_CreateTour_InvalidDate(t *testing.T) {
	env := setupRouter(t)

	body := []byte(`{"name":"X","destination":"Y","price":1,"max_participants":1,` +
		`"start_date":"01/12/2026","end_date":"2026-12-04"}`)
	w := do(env.router, http.MethodPost, "/api/admin/tours", body, uuid.New().String(), true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateTour_ValidationError(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	env.tours.EXPECT().Update(mock.Anything, id, mock.Anything).Return(nil, domain.ErrValidation)

	body := []byte(`{"name":"X","destination":"Y","price":1,"max_participants":1,` +
		`"start_date":"2026-12-01","end_date":"2026-12-04"}`)
	w := do(env.router, http.MethodPut, "/api/admin/tours/"+id, body, uuid.New().String(), true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteTour(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	env.tours.EXPECT().Delete(mock.Anything, id).Return(nil)

	w := do(env.router, http.MethodDelete, "/api/admin/tours/"+id, nil, uuid.New().String(), true)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

// --- Bookings ---

func TestHandler_BookTour_Success(t *testing.T) {
	env := setupRouter(t)

	tour := sampleTour()
	userID := uuid.New().String()
	expires := time.Now().Add(30 * time.Minute)
	booking := &domain.Booking{
		ID:                   uuid.New().String(),
		TourID:               tour.ID,
		Tour:                 tour,
		UserID:               userID,
		NumberOfParticipants: 2,
		TotalPrice:           decimal.NewFromInt(300),
		AmountPaid:           decimal.Zero,
		Status:               domain.BookingStatusPending,
		PaidStatus:           domain.PaidStatusUnpaid,
		ExpiredAt:            &expires,
		CreatedAt:            time.Now(),
	}

	env.bookings.EXPECT().
		Book(mock.Anything, mock.MatchedBy(func(in domain.CreateBookingInput) bool {
			return in.UserID == userID && in.TourID == tour.ID && in.Participants == 2
		})).
		Return(booking, nil)

	w := do(env.router, http.MethodPost, "/api/tours/"+tour.ID+"/book",
		dto.BookRequest{BookingDate: "2026-12-01", NumberOfParticipants: 2}, userID, false)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "unpaid", resp.PaidStatus)
	assert.Equal(t, "300.00", resp.TotalPrice)
	assert.NotEmpty(t, resp.ExpiredAt)
}

func TestHandler_BookTour_Unauthenticated(t *testing.T) {
	env := setupRouter(t)

	w := do(env.router, http.MethodPost, "/api/tours/"+uuid.New().String()+"/book",
		dto.BookRequest{BookingDate: "2026-12-01", NumberOfParticipants: 1}, "", false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_BookTour_ZeroParticipants(t *testing.T) {
	env := setupRouter(t)

	w := do(env.router, http.MethodPost, "/api/tours/"+uuid.New().String()+"/book",
		[]byte(`{"booking_date":"2026-12-01","number_of_participants":0}`), uuid.New().String(), false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BookTour_CapacityExceeded(t *testing.T) {
	env := setupRouter(t)

	tourID := uuid.New().String()
	env.bookings.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, domain.ErrCapacityExceeded)

	w := do(env.router, http.MethodPost, "/api/tours/"+tourID+"/book",
		dto.BookRequest{BookingDate: "2026-12-01", NumberOfParticipants: 20}, uuid.New().String(), false)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_PayBooking(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	id := uuid.New().String()
	booking := &domain.Booking{
		ID:         id,
		UserID:     userID,
		TotalPrice: decimal.NewFromInt(300),
		AmountPaid: decimal.NewFromInt(300),
		Status:     domain.BookingStatusConfirmed,
		PaidStatus: domain.PaidStatusPaid,
	}
	env.bookings.EXPECT().
		RecordPayment(mock.Anything, domain.Actor{UserID: userID}, id, mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(decimal.NewFromInt(300))
		})).
		Return(booking, nil)

	w := do(env.router, http.MethodPost, "/api/bookings/"+id+"/pay", []byte(`{"amount":"300"}`), userID, false)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, "paid", resp.PaidStatus)
}

func TestHandler_PayBooking_Expired(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	env.bookings.EXPECT().RecordPayment(mock.Anything, mock.Anything, id, mock.Anything).
		Return(nil, domain.ErrBookingExpired)

	w := do(env.router, http.MethodPost, "/api/bookings/"+id+"/pay", []byte(`{"amount":10}`), uuid.New().String(), false)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelBooking_Forbidden(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	env.bookings.EXPECT().Cancel(mock.Anything, mock.Anything, id).Return(nil, domain.ErrForbidden)

	w := do(env.router, http.MethodPost, "/api/bookings/"+id+"/cancel", nil, uuid.New().String(), false)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_CancelBooking_AdminActor(t *testing.T) {
	env := setupRouter(t)

	adminID := uuid.New().String()
	id := uuid.New().String()
	env.bookings.EXPECT().Cancel(mock.Anything, domain.Actor{UserID: adminID, Admin: true}, id).
		Return(&domain.Booking{ID: id, Status: domain.BookingStatusCancelled}, nil)

	w := do(env.router, http.MethodPost, "/api/bookings/"+id+"/cancel", nil, adminID, true)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_MyBookings(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	env.bookings.EXPECT().ListByUser(mock.Anything, userID).Return([]*domain.Booking{
		{ID: uuid.New().String(), UserID: userID, Status: domain.BookingStatusPending},
	}, nil)

	w := do(env.router, http.MethodGet, "/api/me/bookings", nil, userID, false)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_SetBookingStatus(t *testing.T) {
	env := setupRouter(t)

	ok1, bad := uuid.New().String(), uuid.New().String()
	env.bookings.EXPECT().
		SetStatus(mock.Anything, []string{ok1, bad}, domain.BookingStatusCancelled).
		Return(&domain.BulkStatusResult{
			Updated: []string{ok1},
			Failed:  map[string]string{bad: "invalid status transition"},
		}, nil)

	w := do(env.router, http.MethodPost, "/api/admin/bookings/status",
		dto.BulkStatusRequest{IDs: []string{ok1, bad}, Status: "cancelled"}, uuid.New().String(), true)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BulkStatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{ok1}, resp.Updated)
	assert.Contains(t, resp.Failed, bad)
}

func TestHandler_SetBookingStatus_EmptyIDs(t *testing.T) {
	env := setupRouter(t)

	w := do(env.router, http.MethodPost, "/api/admin/bookings/status",
		[]byte(`{"ids":[],"status":"confirmed"}`), uuid.New().String(), true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListBookings_Filter(t *testing.T) {
	env := setupRouter(t)

	env.bookings.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f domain.BookingFilter) bool {
			return f.Status == domain.BookingStatusPending && f.Limit == domain.DefaultPageSize
		})).
		Return(nil, int64(0), nil)

	w := do(env.router, http.MethodGet, "/api/admin/bookings?status=pending", nil, uuid.New().String(), true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[],"total":0}`, w.Body.String())
}

// --- Users ---

func TestHandler_Register_Success(t *testing.T) {
	env := setupRouter(t)

	user := &domain.User{
		ID:    uuid.New().String(),
		Name:  "Ann",
		Email: "ann@example.com",
		Roles: []domain.Role{{Code: domain.RoleCustomer}},
	}
	env.users.EXPECT().
		Register(mock.Anything, mock.MatchedBy(func(in domain.RegisterUserInput) bool {
			return in.Email == "ann@example.com" && in.Password == "s3cret-pass"
		})).
		Return(user, nil)

	w := do(env.router, http.MethodPost, "/api/users",
		dto.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "s3cret-pass"}, "", false)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{domain.RoleCustomer}, resp.Roles)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestHandler_Register_EmailTaken(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := do(env.router, http.MethodPost, "/api/users",
		dto.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "s3cret-pass"}, "", false)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Register_RejectsInvalidBody(t *testing.T) {
	tests := []struct {
		name  string
		body  dto.RegisterRequest
		field string
	}{
		{"malformed email", dto.RegisterRequest{Name: "Ann", Email: "ann-at-example.com", Password: "s3cret-pass"}, "Email"},
		{"short password", dto.RegisterRequest{Name: "Ann", Email: "ann@example.com", Password: "short"}, "Password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupRouter(t)

			w := do(env.router, http.MethodPost, "/api/users", tt.body, "", false)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.field)
		})
	}
}

func TestHandler_Login_MalformedEmail(t *testing.T) {
	env := setupRouter(t)

	w := do(env.router, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "ann", Password: "whatever"}, "", false)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	env := setupRouter(t)

	env.users.EXPECT().Login(mock.Anything, "ann@example.com", "wrong").Return("", nil, domain.ErrInvalidCredentials)

	w := do(env.router, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "ann@example.com", Password: "wrong"}, "", false)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	env := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), Email: "ann@example.com"}
	env.users.EXPECT().Login(mock.Anything, "ann@example.com", "right-pass").Return("token-123", user, nil)

	w := do(env.router, http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "ann@example.com", Password: "right-pass"}, "", false)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "token-123", resp.Token)
}

func TestHandler_SetUserRoles_UnknownRole(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	env.users.EXPECT().SetRoles(mock.Anything, id, []string{"pilot"}).Return(domain.ErrRoleNotFound)

	w := do(env.router, http.MethodPut, "/api/admin/users/"+id+"/roles",
		dto.RolesRequest{Roles: []string{"pilot"}}, uuid.New().String(), true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Catalog ---

func TestHandler_AddReview_AlreadyReviewed(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	tourID := uuid.New().String()
	env.catalog.EXPECT().AddReview(mock.Anything, userID, tourID, 5, "great").Return(nil, domain.ErrAlreadyReviewed)

	w := do(env.router, http.MethodPost, "/api/tours/"+tourID+"/reviews",
		dto.ReviewRequest{Rating: 5, Comment: "great"}, userID, false)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Wishlist(t *testing.T) {
	env := setupRouter(t)

	userID := uuid.New().String()
	tour := sampleTour()
	env.catalog.EXPECT().AddToWishlist(mock.Anything, userID, tour.ID).Return(nil)
	env.catalog.EXPECT().Wishlist(mock.Anything, userID).Return([]*domain.Wishlist{
		{UserID: userID, TourID: tour.ID, Tour: tour, CreatedAt: time.Now()},
	}, nil)

	w := do(env.router, http.MethodPost, "/api/me/wishlist/"+tour.ID, nil, userID, false)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(env.router, http.MethodGet, "/api/me/wishlist", nil, userID, false)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.WishlistItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, tour.Name, resp[0].Tour.Name)
}

func TestHandler_CreateCategory_SlugTaken(t *testing.T) {
	env := setupRouter(t)

	env.catalog.EXPECT().CreateCategory(mock.Anything, "Beach", "", "").Return(nil, domain.ErrSlugTaken)

	w := do(env.router, http.MethodPost, "/api/admin/categories",
		dto.CategoryRequest{Name: "Beach"}, uuid.New().String(), true)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Admin ---

func TestHandler_RunJob(t *testing.T) {
	env := setupRouter(t)

	env.jobs.EXPECT().Run(mock.Anything, jobs.NameExpireBookings).Return(jobs.Report{
		Job:       jobs.NameExpireBookings,
		Matched:   2,
		Processed: 2,
		Notified:  1,
		Failed:    1,
	}, nil)

	w := do(env.router, http.MethodPost, "/api/admin/jobs/bookings:expire/run", nil, uuid.New().String(), true)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.JobReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Processed)
	assert.Equal(t, 1, resp.Failed)
}

func TestHandler_RunJob_Errors(t *testing.T) {
	env := setupRouter(t)

	env.jobs.EXPECT().Run(mock.Anything, "nope").Return(jobs.Report{Job: "nope"}, jobs.ErrUnknownJob)
	env.jobs.EXPECT().Run(mock.Anything, jobs.NameTripReminders).Return(jobs.Report{}, jobs.ErrJobRunning)

	w := do(env.router, http.MethodPost, "/api/admin/jobs/nope/run", nil, uuid.New().String(), true)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(env.router, http.MethodPost, "/api/admin/jobs/reminders:trip/run", nil, uuid.New().String(), true)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListNotifications(t *testing.T) {
	env := setupRouter(t)

	bookingID := uuid.New().String()
	env.notifications.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(f domain.NotificationFilter) bool { return f.BookingID == bookingID })).
		Return([]*domain.NotificationLog{{
			ID:        uuid.New().String(),
			BookingID: &bookingID,
			Type:      domain.NotificationBookingCreated,
			Status:    domain.NotificationSent,
			Payload:   datatypes.JSON(`{"text":"hi"}`),
		}}, nil)

	w := do(env.router, http.MethodGet, "/api/admin/notifications?booking_id="+bookingID, nil, uuid.New().String(), true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"text":"hi"`)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	env := setupRouter(t)

	id := uuid.New().String()
	env.tours.EXPECT().GetDetails(mock.Anything, id).Return(nil, assert.AnError)

	w := do(env.router, http.MethodGet, "/api/tours/"+id, nil, "", false)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestHandler_Health(t *testing.T) {
	env := setupRouter(t)

	w := do(env.router, http.MethodGet, "/health", nil, "", false)

	assert.Equal(t, http.StatusOK, w.Code)
}
