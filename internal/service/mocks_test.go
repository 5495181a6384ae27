package service

import (
	"context"
	"sort"
	"time"

	"psybook/internal/domain"
)

// fakeStore backs the fake repositories with shared in-memory state so the
// cross-repository effects of booking operations (slot availability flips,
// releases on cancel) are observable in tests.
type fakeStore struct {
	slots           map[int64]*domain.TimeSlot
	bookings        map[int64]*domain.Booking
	appointmentTyps map[int64]*domain.AppointmentType
	specializations map[int64]*domain.Specialization
	psychologists   map[int64]*domain.Psychologist
	psychSpecs      map[int64]map[int64]bool
	psychTypes      map[int64]map[int64]bool

	nextSlotID    int64
	nextBookingID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		slots:           make(map[int64]*domain.TimeSlot),
		bookings:        make(map[int64]*domain.Booking),
		appointmentTyps: make(map[int64]*domain.AppointmentType),
		specializations: make(map[int64]*domain.Specialization),
		psychologists:   make(map[int64]*domain.Psychologist),
		psychSpecs:      make(map[int64]map[int64]bool),
		psychTypes:      make(map[int64]map[int64]bool),
		nextSlotID:      1,
		nextBookingID:   1,
	}
}

func (s *fakeStore) addAppointmentType(id int64, code domain.AppointmentTypeCode, active bool) *domain.AppointmentType {
	at := &domain.AppointmentType{
		ID:       id,
		Name:     string(code),
		Code:     code,
		IsActive: active,
	}
	s.appointmentTyps[id] = at
	return at
}

func (s *fakeStore) addSpecialization(id int64, name string) *domain.Specialization {
	sp := &domain.Specialization{ID: id, Name: name}
	s.specializations[id] = sp
	return sp
}

func (s *fakeStore) addPsychologist(id int64, specializationIDs ...int64) *domain.Psychologist {
	p := &domain.Psychologist{ID: id, Email: "doc@example.com", FirstName: "Anna", LastName: "Reed", IsActive: true}
	s.psychologists[id] = p
	s.psychSpecs[id] = make(map[int64]bool)
	s.psychTypes[id] = make(map[int64]bool)
	for _, specID := range specializationIDs {
		s.psychSpecs[id][specID] = true
	}
	return p
}

func (s *fakeStore) addSlot(psychologistID, appointmentTypeID int64, available bool) *domain.TimeSlot {
	id := s.nextSlotID
	s.nextSlotID++
	link := "https://meet.example.com/room"
	addr := "12 Clinic St"
	slot := &domain.TimeSlot{
		ID:                id,
		StartTime:         time.Now().Add(24 * time.Hour),
		EndTime:           time.Now().Add(25 * time.Hour),
		IsAvailable:       available,
		PsychologistID:    psychologistID,
		AppointmentTypeID: appointmentTypeID,
		MeetingLink:       &link,
		Address:           &addr,
	}
	s.slots[id] = slot
	return slot
}

type fakeTimeSlotRepo struct {
	store *fakeStore
}

func (r *fakeTimeSlotRepo) Create(ctx context.Context, dto domain.CreateTimeSlotDTO) (int64, error) {
	id := r.store.nextSlotID
	r.store.nextSlotID++
	r.store.slots[id] = &domain.TimeSlot{
		ID:                id,
		StartTime:         dto.StartTime,
		EndTime:           dto.EndTime,
		IsAvailable:       true,
		PsychologistID:    dto.PsychologistID,
		AppointmentTypeID: dto.AppointmentTypeID,
		MeetingLink:       dto.MeetingLink,
		Address:           dto.Address,
		Notes:             dto.Notes,
	}
	return id, nil
}

func (r *fakeTimeSlotRepo) GetByID(ctx context.Context, id int64) (*domain.TimeSlot, error) {
	slot, ok := r.store.slots[id]
	if !ok {
		return nil, domain.NewNotFound("time slot not found")
	}
	copied := *slot
	return &copied, nil
}

func (r *fakeTimeSlotRepo) Update(ctx context.Context, id int64, dto domain.UpdateTimeSlotDTO) error {
	slot, ok := r.store.slots[id]
	if !ok {
		return domain.NewNotFound("time slot not found")
	}
	if dto.StartTime != nil {
		slot.StartTime = *dto.StartTime
	}
	if dto.EndTime != nil {
		slot.EndTime = *dto.EndTime
	}
	if dto.PsychologistID != nil {
		slot.PsychologistID = *dto.PsychologistID
	}
	if dto.AppointmentTypeID != nil {
		slot.AppointmentTypeID = *dto.AppointmentTypeID
	}
	if dto.MeetingLink != nil {
		slot.MeetingLink = dto.MeetingLink
	}
	if dto.Address != nil {
		slot.Address = dto.Address
	}
	if dto.Notes != nil {
		slot.Notes = dto.Notes
	}
	return nil
}

func (r *fakeTimeSlotRepo) Delete(ctx context.Context, id int64) error {
	delete(r.store.slots, id)
	return nil
}

func (r *fakeTimeSlotRepo) SetAvailability(ctx context.Context, id int64, isAvailable bool) error {
	slot, ok := r.store.slots[id]
	if !ok {
		return domain.NewNotFound("time slot not found")
	}
	slot.IsAvailable = isAvailable
	return nil
}

func (r *fakeTimeSlotRepo) List(ctx context.Context, filter domain.TimeSlotFilter) ([]domain.TimeSlot, error) {
	now := time.Now()
	result := make([]domain.TimeSlot, 0)
	for _, slot := range r.store.slots {
		if filter.PsychologistID != nil && slot.PsychologistID != *filter.PsychologistID {
			continue
		}
		if filter.SpecializationID != nil && !r.store.psychSpecs[slot.PsychologistID][*filter.SpecializationID] {
			continue
		}
		if filter.AppointmentTypeID != nil && slot.AppointmentTypeID != *filter.AppointmentTypeID {
			continue
		}
		if filter.IsAvailable != nil && slot.IsAvailable != *filter.IsAvailable {
			continue
		}
		if filter.FutureOnly && !slot.StartTime.After(now) {
			continue
		}
		if filter.StartDate != nil && slot.StartTime.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && slot.StartTime.After(*filter.EndDate) {
			continue
		}
		result = append(result, *slot)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].StartTime.Before(result[j].StartTime) })
	return result, nil
}

// fakeBookingRepo mirrors the storage-level guarantees: the conditional
// availability update, the live-booking uniqueness per slot, and the
// transactional slot release on cancel and delete.
type fakeBookingRepo struct {
	store *fakeStore
}

func (r *fakeBookingRepo) Create(ctx context.Context, dto domain.CreateBookingDTO) (int64, error) {
	slot, ok := r.store.slots[dto.TimeSlotID]
	if !ok || !slot.IsAvailable {
		return 0, domain.NewBadRequest("time slot is not available")
	}
	for _, b := range r.store.bookings {
		if b.TimeSlotID == dto.TimeSlotID && b.Status != domain.BookingStatusCancelled {
			return 0, domain.NewConflict("time slot is already booked")
		}
	}
	slot.IsAvailable = false
	id := r.store.nextBookingID
	r.store.nextBookingID++
	now := time.Now()
	r.store.bookings[id] = &domain.Booking{
		ID:                id,
		ClientName:        dto.ClientName,
		ClientEmail:       dto.ClientEmail,
		ClientPhone:       dto.ClientPhone,
		ClientAddress:     dto.ClientAddress,
		Notes:             dto.Notes,
		Status:            domain.BookingStatusPending,
		TimeSlotID:        dto.TimeSlotID,
		SpecializationID:  dto.SpecializationID,
		AppointmentTypeID: dto.AppointmentTypeID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return id, nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, ok := r.store.bookings[id]
	if !ok {
		return nil, domain.NewNotFound("booking not found")
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeBookingRepo) GetByTimeSlot(ctx context.Context, timeSlotID int64) (*domain.Booking, error) {
	var latest *domain.Booking
	for _, b := range r.store.bookings {
		if b.TimeSlotID != timeSlotID {
			continue
		}
		if latest == nil || b.ID > latest.ID {
			latest = b
		}
	}
	if latest == nil {
		return nil, domain.NewNotFound("booking not found")
	}
	copied := *latest
	return &copied, nil
}

func (r *fakeBookingRepo) GetActiveByTimeSlot(ctx context.Context, timeSlotID int64) (*domain.Booking, error) {
	for _, b := range r.store.bookings {
		if b.TimeSlotID == timeSlotID && b.Status != domain.BookingStatusCancelled {
			copied := *b
			return &copied, nil
		}
	}
	return nil, domain.NewNotFound("booking not found")
}

func (r *fakeBookingRepo) Update(ctx context.Context, id int64, dto domain.UpdateBookingDTO) error {
	booking, ok := r.store.bookings[id]
	if !ok {
		return domain.NewNotFound("booking not found")
	}
	if dto.ClientName != nil {
		booking.ClientName = *dto.ClientName
	}
	if dto.ClientEmail != nil {
		booking.ClientEmail = *dto.ClientEmail
	}
	if dto.ClientPhone != nil {
		booking.ClientPhone = dto.ClientPhone
	}
	if dto.ClientAddress != nil {
		booking.ClientAddress = dto.ClientAddress
	}
	if dto.Notes != nil {
		booking.Notes = dto.Notes
	}
	if dto.TimeSlotID != nil {
		booking.TimeSlotID = *dto.TimeSlotID
	}
	if dto.SpecializationID != nil {
		booking.SpecializationID = *dto.SpecializationID
	}
	if dto.AppointmentTypeID != nil {
		booking.AppointmentTypeID = *dto.AppointmentTypeID
	}
	booking.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	booking, ok := r.store.bookings[id]
	if !ok {
		return domain.NewNotFound("booking not found")
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()
	return nil
}

func (r *fakeBookingRepo) Cancel(ctx context.Context, id int64) error {
	booking, ok := r.store.bookings[id]
	if !ok {
		return domain.NewNotFound("booking not found")
	}
	booking.Status = domain.BookingStatusCancelled
	booking.UpdatedAt = time.Now()
	if slot, ok := r.store.slots[booking.TimeSlotID]; ok {
		slot.IsAvailable = true
	}
	return nil
}

func (r *fakeBookingRepo) Delete(ctx context.Context, id int64) error {
	booking, ok := r.store.bookings[id]
	if !ok {
		return nil
	}
	if slot, ok := r.store.slots[booking.TimeSlotID]; ok {
		slot.IsAvailable = true
	}
	delete(r.store.bookings, id)
	return nil
}

func (r *fakeBookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	result := make([]domain.Booking, 0, len(r.store.bookings))
	for _, b := range r.store.bookings {
		result = append(result, *b)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *fakeBookingRepo) FindByClientEmail(ctx context.Context, clientEmail string) ([]domain.Booking, error) {
	result := make([]domain.Booking, 0)
	for _, b := range r.store.bookings {
		if b.ClientEmail == clientEmail {
			result = append(result, *b)
		}
	}
	return result, nil
}

func (r *fakeBookingRepo) FindByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	result := make([]domain.Booking, 0)
	for _, b := range r.store.bookings {
		if b.Status == status {
			result = append(result, *b)
		}
	}
	return result, nil
}

type fakePsychologistRepo struct {
	store *fakeStore
}

func (r *fakePsychologistRepo) Create(ctx context.Context, dto domain.CreatePsychologistDTO) (int64, error) {
	id := int64(len(r.store.psychologists) + 1)
	r.store.psychologists[id] = &domain.Psychologist{
		ID:        id,
		Email:     dto.Email,
		FirstName: dto.FirstName,
		LastName:  dto.LastName,
		Phone:     dto.Phone,
		IsActive:  true,
	}
	r.store.psychSpecs[id] = make(map[int64]bool)
	r.store.psychTypes[id] = make(map[int64]bool)
	return id, nil
}

func (r *fakePsychologistRepo) GetByID(ctx context.Context, id int64) (*domain.Psychologist, error) {
	p, ok := r.store.psychologists[id]
	if !ok {
		return nil, domain.NewNotFound("psychologist not found")
	}
	copied := *p
	return &copied, nil
}

func (r *fakePsychologistRepo) GetByEmail(ctx context.Context, email string) (*domain.Psychologist, error) {
	for _, p := range r.store.psychologists {
		if p.Email == email {
			copied := *p
			return &copied, nil
		}
	}
	return nil, domain.NewNotFound("psychologist not found")
}

func (r *fakePsychologistRepo) Update(ctx context.Context, id int64, dto domain.UpdatePsychologistDTO) error {
	p, ok := r.store.psychologists[id]
	if !ok {
		return domain.NewNotFound("psychologist not found")
	}
	if dto.Email != nil {
		p.Email = *dto.Email
	}
	if dto.FirstName != nil {
		p.FirstName = *dto.FirstName
	}
	if dto.LastName != nil {
		p.LastName = *dto.LastName
	}
	if dto.Phone != nil {
		p.Phone = dto.Phone
	}
	if dto.IsActive != nil {
		p.IsActive = *dto.IsActive
	}
	return nil
}

func (r *fakePsychologistRepo) UpdatePhoto(ctx context.Context, id int64, photoURL *string) error {
	p, ok := r.store.psychologists[id]
	if !ok {
		return domain.NewNotFound("psychologist not found")
	}
	p.PhotoURL = photoURL
	return nil
}

func (r *fakePsychologistRepo) Delete(ctx context.Context, id int64) error {
	delete(r.store.psychologists, id)
	return nil
}

func (r *fakePsychologistRepo) List(ctx context.Context, filter domain.PsychologistFilter) ([]domain.Psychologist, error) {
	result := make([]domain.Psychologist, 0)
	for id, p := range r.store.psychologists {
		if filter.AppointmentTypeID != nil && !r.store.psychTypes[id][*filter.AppointmentTypeID] {
			continue
		}
		if filter.SpecializationID != nil && !r.store.psychSpecs[id][*filter.SpecializationID] {
			continue
		}
		if filter.IsActive != nil && p.IsActive != *filter.IsActive {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (r *fakePsychologistRepo) AddSpecialization(ctx context.Context, psychologistID, specializationID int64) error {
	r.store.psychSpecs[psychologistID][specializationID] = true
	return nil
}

func (r *fakePsychologistRepo) RemoveSpecialization(ctx context.Context, psychologistID, specializationID int64) error {
	delete(r.store.psychSpecs[psychologistID], specializationID)
	return nil
}

func (r *fakePsychologistRepo) AddAppointmentType(ctx context.Context, psychologistID, appointmentTypeID int64) error {
	r.store.psychTypes[psychologistID][appointmentTypeID] = true
	return nil
}

func (r *fakePsychologistRepo) RemoveAppointmentType(ctx context.Context, psychologistID, appointmentTypeID int64) error {
	delete(r.store.psychTypes[psychologistID], appointmentTypeID)
	return nil
}

func (r *fakePsychologistRepo) HasSpecialization(ctx context.Context, psychologistID, specializationID int64) (bool, error) {
	return r.store.psychSpecs[psychologistID][specializationID], nil
}

func (r *fakePsychologistRepo) SupportsAppointmentType(ctx context.Context, psychologistID, appointmentTypeID int64) (bool, error) {
	return r.store.psychTypes[psychologistID][appointmentTypeID], nil
}

func (r *fakePsychologistRepo) GetSpecializations(ctx context.Context, psychologistID int64) ([]domain.Specialization, error) {
	result := make([]domain.Specialization, 0)
	for specID := range r.store.psychSpecs[psychologistID] {
		if sp, ok := r.store.specializations[specID]; ok {
			result = append(result, *sp)
		}
	}
	return result, nil
}

func (r *fakePsychologistRepo) GetAppointmentTypes(ctx context.Context, psychologistID int64) ([]domain.AppointmentType, error) {
	result := make([]domain.AppointmentType, 0)
	for typeID := range r.store.psychTypes[psychologistID] {
		if at, ok := r.store.appointmentTyps[typeID]; ok {
			result = append(result, *at)
		}
	}
	return result, nil
}

type fakeAppointmentTypeRepo struct {
	store *fakeStore
}

func (r *fakeAppointmentTypeRepo) Create(ctx context.Context, dto domain.CreateAppointmentTypeDTO) (int64, error) {
	id := int64(len(r.store.appointmentTyps) + 1)
	isActive := true
	if dto.IsActive != nil {
		isActive = *dto.IsActive
	}
	r.store.appointmentTyps[id] = &domain.AppointmentType{
		ID:          id,
		Name:        dto.Name,
		Code:        dto.Code,
		Description: dto.Description,
		IsActive:    isActive,
	}
	return id, nil
}

func (r *fakeAppointmentTypeRepo) GetByID(ctx context.Context, id int64) (*domain.AppointmentType, error) {
	at, ok := r.store.appointmentTyps[id]
	if !ok {
		return nil, domain.NewNotFound("appointment type not found")
	}
	copied := *at
	return &copied, nil
}

func (r *fakeAppointmentTypeRepo) GetActiveByID(ctx context.Context, id int64) (*domain.AppointmentType, error) {
	at, ok := r.store.appointmentTyps[id]
	if !ok || !at.IsActive {
		return nil, domain.NewNotFound("appointment type not found")
	}
	copied := *at
	return &copied, nil
}

func (r *fakeAppointmentTypeRepo) GetByCode(ctx context.Context, code domain.AppointmentTypeCode) (*domain.AppointmentType, error) {
	for _, at := range r.store.appointmentTyps {
		if at.Code == code && at.IsActive {
			copied := *at
			return &copied, nil
		}
	}
	return nil, domain.NewNotFound("appointment type not found")
}

func (r *fakeAppointmentTypeRepo) Update(ctx context.Context, id int64, dto domain.UpdateAppointmentTypeDTO) error {
	at, ok := r.store.appointmentTyps[id]
	if !ok {
		return domain.NewNotFound("appointment type not found")
	}
	if dto.Name != nil {
		at.Name = *dto.Name
	}
	if dto.Description != nil {
		at.Description = dto.Description
	}
	if dto.IsActive != nil {
		at.IsActive = *dto.IsActive
	}
	return nil
}

func (r *fakeAppointmentTypeRepo) Deactivate(ctx context.Context, id int64) error {
	at, ok := r.store.appointmentTyps[id]
	if !ok {
		return domain.NewNotFound("appointment type not found")
	}
	at.IsActive = false
	return nil
}

func (r *fakeAppointmentTypeRepo) List(ctx context.Context, includeInactive bool) ([]domain.AppointmentType, error) {
	result := make([]domain.AppointmentType, 0)
	for _, at := range r.store.appointmentTyps {
		if !includeInactive && !at.IsActive {
			continue
		}
		result = append(result, *at)
	}
	return result, nil
}

func (r *fakeAppointmentTypeRepo) PsychologistsByType(ctx context.Context, appointmentTypeID int64) ([]domain.Psychologist, error) {
	result := make([]domain.Psychologist, 0)
	for id, p := range r.store.psychologists {
		if r.store.psychTypes[id][appointmentTypeID] && p.IsActive {
			result = append(result, *p)
		}
	}
	return result, nil
}

type fakeSpecializationRepo struct {
	store *fakeStore
}

func (r *fakeSpecializationRepo) Create(ctx context.Context, dto domain.CreateSpecializationDTO) (int64, error) {
	id := int64(len(r.store.specializations) + 1)
	r.store.specializations[id] = &domain.Specialization{ID: id, Name: dto.Name, Description: dto.Description}
	return id, nil
}

func (r *fakeSpecializationRepo) GetByID(ctx context.Context, id int64) (*domain.Specialization, error) {
	sp, ok := r.store.specializations[id]
	if !ok {
		return nil, domain.NewNotFound("specialization not found")
	}
	copied := *sp
	return &copied, nil
}

func (r *fakeSpecializationRepo) GetByName(ctx context.Context, name string) (*domain.Specialization, error) {
	for _, sp := range r.store.specializations {
		if sp.Name == name {
			copied := *sp
			return &copied, nil
		}
	}
	return nil, domain.NewNotFound("specialization not found")
}

func (r *fakeSpecializationRepo) Update(ctx context.Context, id int64, dto domain.UpdateSpecializationDTO) error {
	sp, ok := r.store.specializations[id]
	if !ok {
		return domain.NewNotFound("specialization not found")
	}
	if dto.Name != nil {
		sp.Name = *dto.Name
	}
	if dto.Description != nil {
		sp.Description = dto.Description
	}
	return nil
}

func (r *fakeSpecializationRepo) Delete(ctx context.Context, id int64) error {
	delete(r.store.specializations, id)
	return nil
}

func (r *fakeSpecializationRepo) List(ctx context.Context) ([]domain.Specialization, error) {
	result := make([]domain.Specialization, 0, len(r.store.specializations))
	for _, sp := range r.store.specializations {
		result = append(result, *sp)
	}
	return result, nil
}

type fakeFileStorage struct {
	uploaded map[string][]byte
	deleted  []string
}

func newFakeFileStorage() *fakeFileStorage {
	return &fakeFileStorage{uploaded: make(map[string][]byte)}
}

func (f *fakeFileStorage) UploadFile(ctx context.Context, data []byte, filename string) (string, error) {
	url := "https://bucket.s3.us-east-1.amazonaws.com/psychologists/" + filename
	f.uploaded[url] = data
	return url, nil
}

func (f *fakeFileStorage) DeleteFile(ctx context.Context, fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	delete(f.uploaded, fileURL)
	return nil
}

func (f *fakeFileStorage) GetFile(ctx context.Context, fileURL string) ([]byte, error) {
	data, ok := f.uploaded[fileURL]
	if !ok {
		return nil, domain.NewNotFound("file not found")
	}
	return data, nil
}

func (f *fakeFileStorage) GetPresignedURL(ctx context.Context, fileURL string, expiry time.Duration) (string, error) {
	return fileURL + "?signed", nil
}
