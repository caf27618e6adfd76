package test

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/vantran/anishop/internal/domain/errors"
	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/domain/repository"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized map.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{Users: make(map[string]*model.User)}
}

func (s *UserRepositoryStub) Create(ctx context.Context, user *model.User) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if _, exists := s.Users[user.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	for _, existing := range s.Users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return domainErrors.ErrAlreadyExists
		}
	}
	clone := *user
	s.Users[user.ID] = &clone
	return nil
}

func (s *UserRepositoryStub) GetByID(ctx context.Context, id string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *UserRepositoryStub) GetByIdentity(ctx context.Context, identity string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, user := range s.Users {
		if user.Username == identity || strings.EqualFold(user.Email, identity) {
			clone := *user
			return &clone, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *UserRepositoryStub) List(ctx context.Context) ([]model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.User
	for _, user := range s.Users {
		result = append(result, *user)
	}
	return result, nil
}

func (s *UserRepositoryStub) SetBan(ctx context.Context, id string, status model.UserStatus, reason, details string) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.Users[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.Status = status
	user.BanReason = reason
	user.BanReasonDetails = details
	return nil
}

func (s *UserRepositoryStub) SetRole(ctx context.Context, id string, role model.Role) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.Users[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.Role = role
	return nil
}

func (s *UserRepositoryStub) ReplaceAll(ctx context.Context, users []model.User) error {
	if s.Err != nil {
		return s.Err
	}
	s.Users = make(map[string]*model.User, len(users))
	for i := range users {
		clone := users[i]
		s.Users[clone.ID] = &clone
	}
	return nil
}

// OrderRepositoryStub stores orders in-memory for tests with optional
// per-method overrides.
type OrderRepositoryStub struct {
	Orders   map[string]*model.Order
	Err      error
	CreateFn func(context.Context, *model.Order) error
	CountFn  func(context.Context) (int, error)
}

// NewOrderRepositoryStub constructs stub with initialized map.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{Orders: make(map[string]*model.Order)}
}

func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	if s.Err != nil {
		return s.Err
	}
	if _, exists := s.Orders[order.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	clone := *order
	s.Orders[order.ID] = &clone
	return nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if order, ok := s.Orders[id]; ok {
		clone := *order
		return &clone, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, order := range s.Orders {
		if order.UserID == userID {
			result = append(result, *order)
		}
	}
	return result, nil
}

func (s *OrderRepositoryStub) ListAll(ctx context.Context) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Order
	for _, order := range s.Orders {
		result = append(result, *order)
	}
	return result, nil
}

func (s *OrderRepositoryStub) Count(ctx context.Context) (int, error) {
	if s.CountFn != nil {
		return s.CountFn(ctx)
	}
	if s.Err != nil {
		return 0, s.Err
	}
	return len(s.Orders), nil
}

func (s *OrderRepositoryStub) Update(ctx context.Context, order *model.Order) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Orders[order.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	clone := *order
	s.Orders[order.ID] = &clone
	return nil
}

func (s *OrderRepositoryStub) UpdateShipping(ctx context.Context, orderID string, info model.ShippingInfo) error {
	if s.Err != nil {
		return s.Err
	}
	order, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.ShippingInfo = info
	return nil
}

func (s *OrderRepositoryStub) SetPaymentStatus(ctx context.Context, orderID string, status model.PaymentStatus) error {
	if s.Err != nil {
		return s.Err
	}
	order, ok := s.Orders[orderID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.PaymentStatus = status
	return nil
}

func (s *OrderRepositoryStub) SumServiceFee(ctx context.Context, status model.OrderStatus) (float64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	var sum float64
	for _, order := range s.Orders {
		if order.Status == status {
			sum += order.ServiceFee
		}
	}
	return sum, nil
}

func (s *OrderRepositoryStub) DeleteAll(ctx context.Context) error {
	if s.Err != nil {
		return s.Err
	}
	s.Orders = make(map[string]*model.Order)
	return nil
}

func (s *OrderRepositoryStub) ReplaceAll(ctx context.Context, orders []model.Order) error {
	if s.Err != nil {
		return s.Err
	}
	s.Orders = make(map[string]*model.Order, len(orders))
	for i := range orders {
		clone := orders[i]
		s.Orders[clone.ID] = &clone
	}
	return nil
}

// EditRequestRepositoryStub stores edit requests in-memory for tests.
type EditRequestRepositoryStub struct {
	Requests map[string]*model.EditRequest
	Err      error
}

// NewEditRequestRepositoryStub constructs stub with initialized map.
func NewEditRequestRepositoryStub() *EditRequestRepositoryStub {
	return &EditRequestRepositoryStub{Requests: make(map[string]*model.EditRequest)}
}

func (s *EditRequestRepositoryStub) Create(ctx context.Context, req *model.EditRequest) error {
	if s.Err != nil {
		return s.Err
	}
	if _, exists := s.Requests[req.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	clone := *req
	s.Requests[req.ID] = &clone
	return nil
}

func (s *EditRequestRepositoryStub) GetByID(ctx context.Context, id string) (*model.EditRequest, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if req, ok := s.Requests[id]; ok {
		clone := *req
		return &clone, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *EditRequestRepositoryStub) GetByToken(ctx context.Context, token string) (*model.EditRequest, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if token == "" {
		return nil, domainErrors.ErrNotFound
	}
	for _, req := range s.Requests {
		if req.Token == token {
			clone := *req
			return &clone, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *EditRequestRepositoryStub) HasPendingForOrder(ctx context.Context, orderID string) (bool, error) {
	if s.Err != nil {
		return false, s.Err
	}
	for _, req := range s.Requests {
		if req.OrderID == orderID && req.Status == model.EditRequestStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (s *EditRequestRepositoryStub) ListAll(ctx context.Context) ([]model.EditRequest, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.EditRequest
	for _, req := range s.Requests {
		result = append(result, *req)
	}
	return result, nil
}

func (s *EditRequestRepositoryStub) ListExpiredLinks(ctx context.Context, now time.Time) ([]model.EditRequest, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.EditRequest
	for _, req := range s.Requests {
		if req.Status == model.EditRequestStatusPending && req.Token != "" && req.Expired(now) {
			result = append(result, *req)
		}
	}
	return result, nil
}

func (s *EditRequestRepositoryStub) SubmitLinkData(ctx context.Context, id string, oldData, newData model.ShippingInfo) error {
	if s.Err != nil {
		return s.Err
	}
	req, ok := s.Requests[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	old := oldData
	fresh := newData
	req.OldData = &old
	req.NewData = &fresh
	req.Token = ""
	return nil
}

func (s *EditRequestRepositoryStub) SetStatus(ctx context.Context, id string, status model.EditRequestStatus, rejectionReason string) error {
	if s.Err != nil {
		return s.Err
	}
	req, ok := s.Requests[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	req.Status = status
	req.RejectionReason = rejectionReason
	return nil
}

func (s *EditRequestRepositoryStub) ReplaceAll(ctx context.Context, requests []model.EditRequest) error {
	if s.Err != nil {
		return s.Err
	}
	s.Requests = make(map[string]*model.EditRequest, len(requests))
	for i := range requests {
		clone := requests[i]
		s.Requests[clone.ID] = &clone
	}
	return nil
}

// TicketRepositoryStub stores tickets in-memory for tests.
type TicketRepositoryStub struct {
	Tickets map[string]*model.SupportTicket
	Err     error
}

// NewTicketRepositoryStub constructs stub with initialized map.
func NewTicketRepositoryStub() *TicketRepositoryStub {
	return &TicketRepositoryStub{Tickets: make(map[string]*model.SupportTicket)}
}

func (s *TicketRepositoryStub) Create(ctx context.Context, ticket *model.SupportTicket) error {
	if s.Err != nil {
		return s.Err
	}
	if _, exists := s.Tickets[ticket.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	clone := *ticket
	clone.Messages = append([]model.TicketMessage(nil), ticket.Messages...)
	s.Tickets[ticket.ID] = &clone
	return nil
}

func (s *TicketRepositoryStub) GetByID(ctx context.Context, id string) (*model.SupportTicket, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if ticket, ok := s.Tickets[id]; ok {
		clone := *ticket
		clone.Messages = append([]model.TicketMessage(nil), ticket.Messages...)
		return &clone, nil
	}
	return nil, domainErrors.ErrNotFound
}

func (s *TicketRepositoryStub) ListByUser(ctx context.Context, userID string) ([]model.SupportTicket, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.SupportTicket
	for _, ticket := range s.Tickets {
		if ticket.UserID == userID {
			result = append(result, *ticket)
		}
	}
	return result, nil
}

func (s *TicketRepositoryStub) ListAll(ctx context.Context) ([]model.SupportTicket, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.SupportTicket
	for _, ticket := range s.Tickets {
		result = append(result, *ticket)
	}
	return result, nil
}

func (s *TicketRepositoryStub) AppendMessage(ctx context.Context, msg *model.TicketMessage) error {
	if s.Err != nil {
		return s.Err
	}
	ticket, ok := s.Tickets[msg.TicketID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	ticket.Messages = append(ticket.Messages, *msg)
	return nil
}

func (s *TicketRepositoryStub) SetStatus(ctx context.Context, id string, status model.TicketStatus) error {
	if s.Err != nil {
		return s.Err
	}
	ticket, ok := s.Tickets[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	ticket.Status = status
	return nil
}

func (s *TicketRepositoryStub) ReplaceAll(ctx context.Context, tickets []model.SupportTicket) error {
	if s.Err != nil {
		return s.Err
	}
	s.Tickets = make(map[string]*model.SupportTicket, len(tickets))
	for i := range tickets {
		clone := tickets[i]
		s.Tickets[clone.ID] = &clone
	}
	return nil
}

// VoucherRepositoryStub stores vouchers in-memory for tests.
type VoucherRepositoryStub struct {
	Vouchers map[string]*model.Voucher
	Err      error
}

// NewVoucherRepositoryStub constructs stub with initialized map.
func NewVoucherRepositoryStub() *VoucherRepositoryStub {
	return &VoucherRepositoryStub{Vouchers: make(map[string]*model.Voucher)}
}

func (s *VoucherRepositoryStub) Create(ctx context.Context, voucher *model.Voucher) error {
	if s.Err != nil {
		return s.Err
	}
	for _, existing := range s.Vouchers {
		if existing.Code == voucher.Code {
			return domainErrors.ErrAlreadyExists
		}
	}
	clone := *voucher
	s.Vouchers[voucher.ID] = &clone
	return nil
}

func (s *VoucherRepositoryStub) GetByCode(ctx context.Context, code string) (*model.Voucher, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, voucher := range s.Vouchers {
		if voucher.Code == code {
			clone := *voucher
			return &clone, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *VoucherRepositoryStub) List(ctx context.Context) ([]model.Voucher, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	var result []model.Voucher
	for _, voucher := range s.Vouchers {
		result = append(result, *voucher)
	}
	return result, nil
}

func (s *VoucherRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.Vouchers[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Vouchers, id)
	return nil
}

func (s *VoucherRepositoryStub) ReplaceAll(ctx context.Context, vouchers []model.Voucher) error {
	if s.Err != nil {
		return s.Err
	}
	s.Vouchers = make(map[string]*model.Voucher, len(vouchers))
	for i := range vouchers {
		clone := vouchers[i]
		s.Vouchers[clone.ID] = &clone
	}
	return nil
}

// SettingsRepositoryStub keeps one settings document in memory.
type SettingsRepositoryStub struct {
	Stored *model.Settings
	Err    error
}

func (s *SettingsRepositoryStub) Get(ctx context.Context) (*model.Settings, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Stored == nil {
		return nil, domainErrors.ErrNotFound
	}
	clone := *s.Stored
	return &clone, nil
}

func (s *SettingsRepositoryStub) Save(ctx context.Context, settings model.Settings) error {
	if s.Err != nil {
		return s.Err
	}
	clone := settings
	s.Stored = &clone
	return nil
}

// RepositoryFactoryStub bundles all stubs behind the factory interface.
type RepositoryFactoryStub struct {
	UsersStub        *UserRepositoryStub
	OrdersStub       *OrderRepositoryStub
	EditRequestsStub *EditRequestRepositoryStub
	TicketsStub      *TicketRepositoryStub
	VouchersStub     *VoucherRepositoryStub
	SettingsStub     *SettingsRepositoryStub
}

// NewRepositoryFactoryStub constructs a factory with fresh empty stubs.
func NewRepositoryFactoryStub() *RepositoryFactoryStub {
	return &RepositoryFactoryStub{
		UsersStub:        NewUserRepositoryStub(),
		OrdersStub:       NewOrderRepositoryStub(),
		EditRequestsStub: NewEditRequestRepositoryStub(),
		TicketsStub:      NewTicketRepositoryStub(),
		VouchersStub:     NewVoucherRepositoryStub(),
		SettingsStub:     &SettingsRepositoryStub{},
	}
}

func (s *RepositoryFactoryStub) Users() repository.UserRepository { return s.UsersStub }
func (s *RepositoryFactoryStub) Orders() repository.OrderRepository {
	return s.OrdersStub
}
func (s *RepositoryFactoryStub) EditRequests() repository.EditRequestRepository {
	return s.EditRequestsStub
}
func (s *RepositoryFactoryStub) Tickets() repository.TicketRepository   { return s.TicketsStub }
func (s *RepositoryFactoryStub) Vouchers() repository.VoucherRepository { return s.VouchersStub }
func (s *RepositoryFactoryStub) Settings() repository.SettingsRepository {
	return s.SettingsStub
}

