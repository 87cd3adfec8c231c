package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrSlotTaken                         = errors.New("slot is no longer available")
	ErrCoachUnavailable                  = errors.New("coach is no longer available")
	ErrEquipmentUnavailable              = errors.New("not enough equipment stock for this slot")
	ErrBookingNotFound                   = errors.New("booking not found")
	ErrBookingNotFoundOrAlreadyCancelled = errors.New("booking not found or already cancelled")
)

const pqUniqueViolation = "23505"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create inserts the booking and its equipment lines in a single transaction.
// Availability is re-checked inside the transaction: coach and equipment
// conflicts by interval overlap, court slot uniqueness by the partial unique
// index, so two concurrent writers can never both end up confirmed and a
// failed equipment insert can never leave an orphaned booking row.
func (r *repository) Create(ctx context.Context, userID uuid.UUID, date time.Time, req CreateBookingRequest) (*Booking, error) {
	endHour := req.StartHour + 1

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if req.CoachID != nil {
		var busy bool
		err = tx.GetContext(ctx, &busy, `
			SELECT EXISTS(
				SELECT 1 FROM bookings
				WHERE coach_id = $1
				  AND booking_date = $2
				  AND status = 'confirmed'
				  AND start_hour < $3
				  AND end_hour > $4
			)
		`, *req.CoachID, date, endHour, req.StartHour)
		if err != nil {
			return nil, err
		}
		if busy {
			return nil, ErrCoachUnavailable
		}
	}

	for _, line := range req.Equipment {
		var totalStock int
		err = tx.GetContext(ctx, &totalStock,
			`SELECT total_stock FROM equipment WHERE id = $1 FOR UPDATE`,
			line.EquipmentID,
		)
		if err != nil {
			return nil, err
		}

		var used int
		err = tx.GetContext(ctx, &used, `
			SELECT COALESCE(SUM(be.quantity), 0)
			FROM booking_equipment be
			JOIN bookings b ON be.booking_id = b.id
			WHERE be.equipment_id = $1
			  AND b.booking_date = $2
			  AND b.status = 'confirmed'
			  AND b.start_hour < $3
			  AND b.end_hour > $4
		`, line.EquipmentID, date, endHour, req.StartHour)
		if err != nil {
			return nil, err
		}

		if used+line.Quantity > totalStock {
			return nil, ErrEquipmentUnavailable
		}
	}

	var b Booking
	err = tx.GetContext(ctx, &b, `
		INSERT INTO bookings (
			user_id, court_id, coach_id, booking_date, start_hour, end_hour, status,
			base_price_cents, peak_fee_cents, weekend_fee_cents, indoor_fee_cents,
			equipment_fee_cents, coach_fee_cents, total_cents
		)
		VALUES ($1, $2, $3, $4, $5, $6, 'confirmed', $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, user_id, court_id, coach_id, booking_date, start_hour, end_hour, status,
		          base_price_cents, peak_fee_cents, weekend_fee_cents, indoor_fee_cents,
		          equipment_fee_cents, coach_fee_cents, total_cents, created_at
	`,
		userID, req.CourtID, req.CoachID, date, req.StartHour, endHour,
		req.BasePriceCents, req.PeakFeeCents, req.WeekendFeeCents, req.IndoorFeeCents,
		req.EquipmentFeeCents, req.CoachFeeCents, req.TotalCents,
	)
	if err != nil {
		return nil, mapConflict(err)
	}

	for _, line := range req.Equipment {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO booking_equipment (booking_id, equipment_id, quantity, price_cents)
			VALUES ($1, $2, $3, $4)
		`, b.ID, line.EquipmentID, line.Quantity, line.PriceCents)
		if err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, mapConflict(err)
	}

	return &b, nil
}

// mapConflict translates unique violations on the partial slot indexes into
// the conflict sentinels callers can act on.
func mapConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		switch pqErr.Constraint {
		case "bookings_coach_slot_confirmed":
			return ErrCoachUnavailable
		default:
			return ErrSlotTaken
		}
	}
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	query := `
		SELECT id, user_id, court_id, coach_id, booking_date, start_hour, end_hour, status,
		       base_price_cents, peak_fee_cents, weekend_fee_cents, indoor_fee_cents,
		       equipment_fee_cents, coach_fee_cents, total_cents, created_at
		FROM bookings
		WHERE id = $1
	`

	var b Booking
	err := r.db.GetContext(ctx, &b, query, id)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *repository) Cancel(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled'
		WHERE id = $1 AND status = 'confirmed'
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrBookingNotFoundOrAlreadyCancelled
	}

	return nil
}

func (r *repository) ListForUser(ctx context.Context, userID uuid.UUID) ([]BookingWithDetails, error) {
	query := `
		SELECT
			b.id, b.user_id, b.court_id, b.coach_id, b.booking_date, b.start_hour, b.end_hour, b.status,
			b.base_price_cents, b.peak_fee_cents, b.weekend_fee_cents, b.indoor_fee_cents,
			b.equipment_fee_cents, b.coach_fee_cents, b.total_cents, b.created_at,
			c.name AS court_name,
			c.court_type AS court_type,
			co.name AS coach_name
		FROM bookings b
		JOIN courts c ON b.court_id = c.id
		LEFT JOIN coaches co ON b.coach_id = co.id
		WHERE b.user_id = $1
		ORDER BY b.booking_date DESC, b.start_hour DESC
	`

	var bookings []BookingWithDetails
	err := r.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) EquipmentLinesForBooking(ctx context.Context, bookingID uuid.UUID) ([]EquipmentLine, error) {
	query := `
		SELECT id, booking_id, equipment_id, quantity, price_cents, created_at
		FROM booking_equipment
		WHERE booking_id = $1
		ORDER BY created_at ASC
	`

	var lines []EquipmentLine
	err := r.db.SelectContext(ctx, &lines, query, bookingID)
	if err != nil {
		return nil, err
	}

	return lines, nil
}

func (r *repository) ListConfirmedForCourtDate(ctx context.Context, courtID uuid.UUID, date time.Time) ([]Booking, error) {
	query := `
		SELECT id, user_id, court_id, coach_id, booking_date, start_hour, end_hour, status,
		       base_price_cents, peak_fee_cents, weekend_fee_cents, indoor_fee_cents,
		       equipment_fee_cents, coach_fee_cents, total_cents, created_at
		FROM bookings
		WHERE court_id = $1 AND booking_date = $2 AND status = 'confirmed'
		ORDER BY start_hour ASC
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, courtID, date)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListConfirmedForCoachDate(ctx context.Context, coachID uuid.UUID, date time.Time) ([]Booking, error) {
	query := `
		SELECT id, user_id, court_id, coach_id, booking_date, start_hour, end_hour, status,
		       base_price_cents, peak_fee_cents, weekend_fee_cents, indoor_fee_cents,
		       equipment_fee_cents, coach_fee_cents, total_cents, created_at
		FROM bookings
		WHERE coach_id = $1 AND booking_date = $2 AND status = 'confirmed'
		ORDER BY start_hour ASC
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, coachID, date)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// EquipmentUsage sums confirmed equipment quantities over bookings that
// overlap the [startHour, endHour) window on the given date.
func (r *repository) EquipmentUsage(ctx context.Context, date time.Time, startHour, endHour int) (map[uuid.UUID]int, error) {
	query := `
		SELECT be.equipment_id, COALESCE(SUM(be.quantity), 0) AS used
		FROM booking_equipment be
		JOIN bookings b ON be.booking_id = b.id
		WHERE b.booking_date = $1
		  AND b.status = 'confirmed'
		  AND b.start_hour < $2
		  AND b.end_hour > $3
		GROUP BY be.equipment_id
	`

	rows, err := r.db.QueryxContext(ctx, query, date, endHour, startHour)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usage := make(map[uuid.UUID]int)
	for rows.Next() {
		var equipmentID uuid.UUID
		var used int
		if err := rows.Scan(&equipmentID, &used); err != nil {
			return nil, err
		}
		usage[equipmentID] = used
	}

	return usage, rows.Err()
}

func (r *repository) JoinWaitlist(ctx context.Context, userID uuid.UUID, courtID uuid.UUID, date time.Time, startHour int) (*WaitlistEntry, error) {
	query := `
		INSERT INTO waitlist (user_id, court_id, booking_date, start_hour, end_hour, position)
		VALUES ($1, $2, $3, $4, $4 + 1,
			(SELECT COUNT(*) + 1 FROM waitlist WHERE court_id = $2 AND booking_date = $3 AND start_hour = $4))
		RETURNING id, user_id, court_id, booking_date, start_hour, end_hour, position, notified, created_at
	`

	var entry WaitlistEntry
	err := r.db.GetContext(ctx, &entry, query, userID, courtID, date, startHour)
	if err != nil {
		return nil, err
	}

	return &entry, nil
}

func (r *repository) ListWaitlistForUser(ctx context.Context, userID uuid.UUID) ([]WaitlistEntry, error) {
	query := `
		SELECT id, user_id, court_id, booking_date, start_hour, end_hour, position, notified, created_at
		FROM waitlist
		WHERE user_id = $1
		ORDER BY booking_date DESC, start_hour DESC
	`

	var entries []WaitlistEntry
	err := r.db.SelectContext(ctx, &entries, query, userID)
	if err != nil {
		return nil, err
	}

	return entries, nil
}
