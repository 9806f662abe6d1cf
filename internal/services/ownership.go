package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "pennywise/internal/errors"
	"pennywise/internal/models"
)

// ownedRecord is any model that knows both its primary key and its
// owning profile.
type ownedRecord interface {
	models.Owned
	RecordID() uint
}

// authorize is the single ownership predicate: a record may only be
// touched by the profile that owns it.
func authorize(rec models.Owned, profileID uint) error {
	if rec.OwnerID() != profileID {
		return apperrors.ErrForbidden
	}
	return nil
}

// firstOwned fetches a record by id and authorizes it against the
// requesting profile. Absent records yield notFound; records owned by
// another profile yield ErrForbidden.
func firstOwned[M ownedRecord](db *gorm.DB, profileID, id uint, notFound *apperrors.AppError) (*M, error) {
	var rec M
	if err := db.First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := authorize(rec, profileID); err != nil {
		return nil, err
	}
	return &rec, nil
}

// deleteOwned deletes the owned subset of the given ids and reports how
// many rows were removed. Ids owned by other profiles are silently
// excluded. No matching rows at all is NOT_FOUND; matching rows with
// none owned is FORBIDDEN.
func deleteOwned[M ownedRecord](db *gorm.DB, profileID uint, ids []uint) (int, error) {
	var records []M
	if err := db.Where("id IN ?", ids).Find(&records).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(records) == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrNotFound, "Records not found")
	}

	ownedIDs := make([]uint, 0, len(records))
	for _, rec := range records {
		if rec.OwnerID() == profileID {
			ownedIDs = append(ownedIDs, rec.RecordID())
		}
	}
	if len(ownedIDs) == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrForbidden, "Unauthorized to delete these records")
	}

	if err := db.Where("id IN ?", ownedIDs).Delete(new(M)).Error; err != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return len(ownedIDs), nil
}
