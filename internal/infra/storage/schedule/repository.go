package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/haulport/DockSlotService/internal/domain"
	"github.com/haulport/DockSlotService/pkg/dbmetrics"
	"github.com/haulport/DockSlotService/pkg/psqlbuilder"
	"github.com/haulport/DockSlotService/pkg/types"
)

var hoursOverrideColumns = []string{
	"id",
	"organization_id",
	"facility_id",
	"appointment_type_id",
	"weekday",
	"is_open",
	"start_time",
	"end_time",
	"break_start",
	"break_end",
	"created_at",
	"updated_at",
}

var closureColumns = []string{
	"id",
	"organization_id",
	"facility_id",
	"appointment_type_id",
	"start_date",
	"end_date",
	"reason",
	"created_at",
	"updated_at",
}

// Repository stores the hours-override hierarchy and closures.
type Repository struct {
	db DBExecutor
}

// NewRepository creates the schedule configuration repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// levelConditions matches rows of all hierarchy levels relevant to one
// (organization, facility, appointment type) lookup: the organization-wide
// rows, the facility rows, and the appointment-type rows.
func levelConditions(facilityID, typeID *int64) squirrel.Or {
	conditions := squirrel.Or{
		squirrel.And{
			squirrel.Eq{"facility_id": nil},
			squirrel.Eq{"appointment_type_id": nil},
		},
	}
	if facilityID != nil {
		conditions = append(conditions, squirrel.And{
			squirrel.Eq{"facility_id": *facilityID},
			squirrel.Eq{"appointment_type_id": nil},
		})
	}
	if facilityID != nil && typeID != nil {
		conditions = append(conditions, squirrel.And{
			squirrel.Eq{"facility_id": *facilityID},
			squirrel.Eq{"appointment_type_id": *typeID},
		})
	}
	return conditions
}

// nullableTimeString converts a scanned TIME column (possibly with seconds)
// into an optional HH:MM value.
func nullableTimeString(v sql.NullString) *types.TimeString {
	if !v.Valid || v.String == "" {
		return nil
	}
	raw := v.String
	if len(raw) > 5 {
		raw = raw[:5]
	}
	ts := types.TimeString(raw)
	return &ts
}

// GetHoursOverrides loads all override rows relevant to the given facility
// and appointment type in one query: organization defaults, facility
// overrides, and appointment-type overrides. The hierarchy itself is
// resolved in the availability package, not in SQL.
func (r *Repository) GetHoursOverrides(ctx context.Context, orgID int64, facilityID, typeID *int64) ([]*domain.HoursOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursOverrideColumns...).
		From("hours_overrides").
		Where(squirrel.Eq{"organization_id": orgID}).
		Where(levelConditions(facilityID, typeID)).
		OrderBy("weekday ASC, facility_id NULLS FIRST, appointment_type_id NULLS FIRST").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetHoursOverrides - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHoursOverrides - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanOverrides(rows)
}

// GetFacilityHoursOverrides loads every override row that can affect a
// facility: the organization-wide rows and all facility rows including
// the appointment-type ones. Used by the schedule configuration surface.
func (r *Repository) GetFacilityHoursOverrides(ctx context.Context, orgID, facilityID int64) ([]*domain.HoursOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(hoursOverrideColumns...).
		From("hours_overrides").
		Where(squirrel.Eq{"organization_id": orgID}).
		Where(squirrel.Or{
			squirrel.Eq{"facility_id": nil},
			squirrel.Eq{"facility_id": facilityID},
		}).
		OrderBy("weekday ASC, facility_id NULLS FIRST, appointment_type_id NULLS FIRST").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetFacilityHoursOverrides - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetFacilityHoursOverrides - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanOverrides(rows)
}

// UpsertHoursOverride inserts or updates one override row, keyed by
// (organization, facility, appointment type, weekday).
func (r *Repository) UpsertHoursOverride(ctx context.Context, override *domain.HoursOverride) (*domain.HoursOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("hours_overrides").
		Columns(
			"organization_id",
			"facility_id",
			"appointment_type_id",
			"weekday",
			"is_open",
			"start_time",
			"end_time",
			"break_start",
			"break_end",
		).
		Values(
			override.OrganizationID,
			override.FacilityID,
			override.AppointmentTypeID,
			override.Weekday,
			override.Hours.Open,
			override.Hours.Start,
			override.Hours.End,
			override.Hours.BreakStart,
			override.Hours.BreakEnd,
		).
		Suffix(`ON CONFLICT (organization_id, coalesce(facility_id, 0), coalesce(appointment_type_id, 0), weekday)
			DO UPDATE SET
				is_open = EXCLUDED.is_open,
				start_time = EXCLUDED.start_time,
				end_time = EXCLUDED.end_time,
				break_start = EXCLUDED.break_start,
				break_end = EXCLUDED.break_end,
				updated_at = now()
			RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertHoursOverride - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertHoursOverride - execute insert: %v", ErrExecQuery, err)
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return override, nil
}

// DeleteHoursOverride removes one facility override row by id. The row
// must belong to the given organization and facility.
func (r *Repository) DeleteHoursOverride(ctx context.Context, orgID, facilityID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("hours_overrides").
		Where(squirrel.Eq{
			"id":              id,
			"organization_id": orgID,
			"facility_id":     facilityID,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteHoursOverride - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteHoursOverride - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteHoursOverride - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

// GetClosures loads all closures relevant to the given facility and
// appointment type whose date range intersects [from, to], holidays of the
// organization included.
func (r *Repository) GetClosures(ctx context.Context, orgID int64, facilityID, typeID *int64, from, to time.Time) ([]*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(closureColumns...).
		From("closures").
		Where(squirrel.Eq{"organization_id": orgID}).
		Where(levelConditions(facilityID, typeID)).
		Where(squirrel.LtOrEq{"start_date": to}).
		Where(squirrel.GtOrEq{"end_date": from}).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetClosures - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetClosures - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanClosures(rows)
}

// CreateClosure stores a new closure.
func (r *Repository) CreateClosure(ctx context.Context, closure *domain.Closure) (*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("closures").
		Columns(
			"organization_id",
			"facility_id",
			"appointment_type_id",
			"start_date",
			"end_date",
			"reason",
		).
		Values(
			closure.OrganizationID,
			closure.FacilityID,
			closure.AppointmentTypeID,
			closure.StartDate,
			closure.EndDate,
			closure.Reason,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateClosure - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&closure.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateClosure - execute insert: %v", ErrExecQuery, err)
	}

	closure.CreatedAt = createdAt.Time
	closure.UpdatedAt = updatedAt.Time

	return closure, nil
}

// GetFacilityClosures loads every closure that can affect a facility
// within [from, to]: organization-wide holidays and all facility
// closures including the appointment-type ones.
func (r *Repository) GetFacilityClosures(ctx context.Context, orgID, facilityID int64, from, to time.Time) ([]*domain.Closure, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(closureColumns...).
		From("closures").
		Where(squirrel.Eq{"organization_id": orgID}).
		Where(squirrel.Or{
			squirrel.Eq{"facility_id": nil},
			squirrel.Eq{"facility_id": facilityID},
		}).
		Where(squirrel.LtOrEq{"start_date": to}).
		Where(squirrel.GtOrEq{"end_date": from}).
		OrderBy("start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetFacilityClosures - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetFacilityClosures - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanClosures(rows)
}

// DeleteClosure removes one facility closure by id. The row must belong
// to the given organization and facility.
func (r *Repository) DeleteClosure(ctx context.Context, orgID, facilityID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("closures").
		Where(squirrel.Eq{
			"id":              id,
			"organization_id": orgID,
			"facility_id":     facilityID,
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteClosure - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteClosure - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteClosure - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrClosureNotFound
	}

	return nil
}

func (r *Repository) scanOverrides(rows *sql.Rows) ([]*domain.HoursOverride, error) {
	overrides := make([]*domain.HoursOverride, 0)

	for rows.Next() {
		var (
			override             domain.HoursOverride
			isOpen               sql.NullBool
			startTime, endTime   sql.NullString
			breakStart, breakEnd sql.NullString
			createdAt, updatedAt sql.NullTime
		)

		err := rows.Scan(
			&override.ID,
			&override.OrganizationID,
			&override.FacilityID,
			&override.AppointmentTypeID,
			&override.Weekday,
			&isOpen,
			&startTime,
			&endTime,
			&breakStart,
			&breakEnd,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanOverrides - scan override: %v", ErrScanRow, err)
		}

		if isOpen.Valid {
			open := isOpen.Bool
			override.Hours.Open = &open
		}
		override.Hours.Start = nullableTimeString(startTime)
		override.Hours.End = nullableTimeString(endTime)
		override.Hours.BreakStart = nullableTimeString(breakStart)
		override.Hours.BreakEnd = nullableTimeString(breakEnd)

		override.CreatedAt = createdAt.Time
		override.UpdatedAt = updatedAt.Time

		overrides = append(overrides, &override)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanOverrides - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

func (r *Repository) scanClosures(rows *sql.Rows) ([]*domain.Closure, error) {
	closures := make([]*domain.Closure, 0)

	for rows.Next() {
		var (
			closure              domain.Closure
			createdAt, updatedAt sql.NullTime
		)

		err := rows.Scan(
			&closure.ID,
			&closure.OrganizationID,
			&closure.FacilityID,
			&closure.AppointmentTypeID,
			&closure.StartDate,
			&closure.EndDate,
			&closure.Reason,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanClosures - scan closure: %v", ErrScanRow, err)
		}

		closure.CreatedAt = createdAt.Time
		closure.UpdatedAt = updatedAt.Time

		closures = append(closures, &closure)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanClosures - rows error: %v", ErrScanRow, err)
	}

	return closures, nil
}
