package escrow

import (
	"encoding/json"
	"errors"
	"github.com/QuangTung97/crowdfund-escrow/ledger"
	"github.com/QuangTung97/crowdfund-escrow/pkg/memtable"
	"github.com/QuangTung97/crowdfund-escrow/pkg/otellib"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"net/http"
	"strconv"
	"time"
)

// IdempotencyTable remembers the keys of in progress and applied requests
type IdempotencyTable interface {
	GetOrSetNum(key string, num uint64, ttl time.Duration) (uint64, bool)
	SetNum(key string, num uint64, ttl time.Duration)
	Delete(key string)
}

var _ IdempotencyTable = &memtable.MemTable{}

const (
	callerHeader      = "X-Caller-Identity"
	idempotencyHeader = "Idempotency-Key"

	idempotencyTTL = 24 * time.Hour

	requestInProgress uint64 = 1
	requestApplied    uint64 = 2
)

// Server exposes IService over HTTP
type Server struct {
	service     IService
	idempotency IdempotencyTable
	router      chi.Router
}

// NewServer ...
func NewServer(service IService, idempotency IdempotencyTable, logger *zap.Logger, tracer trace.Tracer) *Server {
	s := &Server{
		service:     service,
		idempotency: idempotency,
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(otellib.Middleware(logger, tracer))

	r.Route("/campaign", func(r chi.Router) {
		r.Get("/", s.getCampaign)
		r.Post("/", s.createCampaign)
		r.Get("/balance", s.getBalance)
		r.Get("/contributions/{identity}", s.getContribution)
		r.Get("/events", s.listEvents)

		r.Post("/pledges", s.pledge)
		r.Post("/withdrawal", s.withdrawFunds)
		r.Post("/refunds", s.reclaimContribution)
		r.Post("/refunds/retry", s.retryRefund)
	})

	s.router = r
	return s
}

// ServeHTTP ...
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type amountResponse struct {
	Amount   decimal.Decimal `json:"amount"`
	Replayed bool            `json:"replayed,omitempty"`
}

type campaignResponse struct {
	Owner              string          `json:"owner"`
	FundingGoal        decimal.Decimal `json:"funding_goal"`
	Deadline           time.Time       `json:"deadline"`
	TotalContributions decimal.Decimal `json:"total_contributions"`
	Balance            decimal.Decimal `json:"balance"`
	Status             string          `json:"status"`
}

type contributionResponse struct {
	Contributor  string          `json:"contributor"`
	Amount       decimal.Decimal `json:"amount"`
	FailedRefund decimal.Decimal `json:"failed_refund"`
}

type eventResponse struct {
	ID        uint64          `json:"id"`
	Type      string          `json:"type"`
	Identity  string          `json:"identity"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

type createRequest struct {
	FundingGoal     decimal.Decimal `json:"funding_goal"`
	DurationSeconds int64           `json:"duration_seconds"`
}

type pledgeRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

var errorCodes = []struct {
	err    error
	status int
	code   string
}{
	{err: ledger.ErrInvalidParameters, status: http.StatusBadRequest, code: "invalid_parameters"},
	{err: ledger.ErrZeroContribution, status: http.StatusBadRequest, code: "zero_contribution"},
	{err: ledger.ErrInvalidAmount, status: http.StatusBadRequest, code: "invalid_amount"},
	{err: ledger.ErrNotOwner, status: http.StatusForbidden, code: "not_owner"},
	{err: ledger.ErrCampaignEnded, status: http.StatusConflict, code: "campaign_ended"},
	{err: ledger.ErrCampaignActive, status: http.StatusConflict, code: "campaign_active"},
	{err: ledger.ErrGoalNotReached, status: http.StatusConflict, code: "goal_not_reached"},
	{err: ledger.ErrGoalReached, status: http.StatusConflict, code: "goal_reached"},
	{err: ledger.ErrNothingToReclaim, status: http.StatusConflict, code: "nothing_to_reclaim"},
	{err: ledger.ErrNothingToWithdraw, status: http.StatusConflict, code: "nothing_to_withdraw"},
	{err: ledger.ErrNoFailedRefund, status: http.StatusConflict, code: "no_failed_refund"},
	{err: ledger.ErrTransferFailed, status: http.StatusBadGateway, code: "transfer_failed"},
	{err: ErrCampaignNotFound, status: http.StatusNotFound, code: "campaign_not_found"},
	{err: ErrCampaignExists, status: http.StatusConflict, code: "campaign_exists"},
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			writeJSON(w, e.status, errorResponse{Code: e.code, Message: err.Error()})
			return
		}
	}

	otellib.WrapError(r.Context(), err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Code: "internal", Message: "internal error"})
}

func writeBadRequest(w http.ResponseWriter, code string, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Code: code, Message: message})
}

func callerFrom(w http.ResponseWriter, r *http.Request) (ledger.Identity, bool) {
	caller := r.Header.Get(callerHeader)
	if caller == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{
			Code:    "missing_caller",
			Message: callerHeader + " header is required",
		})
		return "", false
	}
	return ledger.Identity(caller), true
}

func (s *Server) getCampaign(w http.ResponseWriter, r *http.Request) {
	output, err := s.service.GetCampaign(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignResponse(output))
}

func (s *Server) createCampaign(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid_body", err.Error())
		return
	}

	output, err := s.service.Create(r.Context(), CreateInput{
		Owner:       caller,
		FundingGoal: req.FundingGoal,
		Duration:    time.Duration(req.DurationSeconds) * time.Second,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCampaignResponse(output))
}

func (s *Server) getBalance(w http.ResponseWriter, r *http.Request) {
	balance, err := s.service.GetBalance(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, amountResponse{Amount: balance})
}

func (s *Server) getContribution(w http.ResponseWriter, r *http.Request) {
	identity := ledger.Identity(chi.URLParam(r, "identity"))

	output, err := s.service.GetContribution(r.Context(), identity)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, contributionResponse{
		Contributor:  string(output.Contributor),
		Amount:       output.Amount,
		FailedRefund: output.FailedRefund,
	})
}

func parseUintQuery(r *http.Request, name string) (uint64, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return 0, nil
	}
	return strconv.ParseUint(value, 10, 64)
}

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	fromID, err := parseUintQuery(r, "from")
	if err != nil {
		writeBadRequest(w, "invalid_query", err.Error())
		return
	}
	limit, err := parseUintQuery(r, "limit")
	if err != nil {
		writeBadRequest(w, "invalid_query", err.Error())
		return
	}

	events, err := s.service.ListEvents(r.Context(), fromID, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result := make([]eventResponse, 0, len(events))
	for _, e := range events {
		result = append(result, eventResponse{
			ID:        e.ID,
			Type:      ledger.EventType(e.Type).String(),
			Identity:  e.Identity,
			Amount:    e.Amount,
			CreatedAt: e.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) pledge(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	var req pledgeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid_body", err.Error())
		return
	}

	var cacheKey string
	if key := r.Header.Get(idempotencyHeader); key != "" {
		cacheKey = "pledge:" + string(caller) + ":" + key

		state, existed := s.idempotency.GetOrSetNum(cacheKey, requestInProgress, idempotencyTTL)
		if existed && state == requestApplied {
			writeJSON(w, http.StatusOK, amountResponse{Amount: req.Amount, Replayed: true})
			return
		}
		if existed {
			writeJSON(w, http.StatusConflict, errorResponse{
				Code:    "request_in_progress",
				Message: "a request with the same " + idempotencyHeader + " is in progress",
			})
			return
		}
	}

	err := s.service.Pledge(r.Context(), caller, req.Amount)
	if err != nil {
		if cacheKey != "" {
			s.idempotency.Delete(cacheKey)
		}
		writeError(w, r, err)
		return
	}

	if cacheKey != "" {
		s.idempotency.SetNum(cacheKey, requestApplied, idempotencyTTL)
	}
	writeJSON(w, http.StatusOK, amountResponse{Amount: req.Amount})
}

func (s *Server) settle(
	w http.ResponseWriter, r *http.Request,
	fn func(caller ledger.Identity) (decimal.Decimal, error),
) {
	caller, ok := callerFrom(w, r)
	if !ok {
		return
	}

	amount, err := fn(caller)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, amountResponse{Amount: amount})
}

func (s *Server) withdrawFunds(w http.ResponseWriter, r *http.Request) {
	s.settle(w, r, func(caller ledger.Identity) (decimal.Decimal, error) {
		return s.service.WithdrawFunds(r.Context(), caller)
	})
}

func (s *Server) reclaimContribution(w http.ResponseWriter, r *http.Request) {
	s.settle(w, r, func(caller ledger.Identity) (decimal.Decimal, error) {
		return s.service.ReclaimContribution(r.Context(), caller)
	})
}

func (s *Server) retryRefund(w http.ResponseWriter, r *http.Request) {
	s.settle(w, r, func(caller ledger.Identity) (decimal.Decimal, error) {
		return s.service.RetryRefund(r.Context(), caller)
	})
}

func toCampaignResponse(output CampaignOutput) campaignResponse {
	return campaignResponse{
		Owner:              string(output.Owner),
		FundingGoal:        output.FundingGoal,
		Deadline:           output.Deadline,
		TotalContributions: output.TotalContributions,
		Balance:            output.Balance,
		Status:             output.Status.String(),
	}
}
