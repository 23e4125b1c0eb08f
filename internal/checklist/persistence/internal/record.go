package internal

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	checklistDomain "greenhouse-server/internal/checklist/domain"
	"greenhouse-server/internal/infra/utils"
	shareddomain "greenhouse-server/internal/shared_kernel/domain"
)

type ChecklistRecord struct {
	ID            string     `json:"id" gorm:"primaryKey"`
	Version       int        `json:"version"`
	GreenhouseID  string     `json:"greenhouse_id" gorm:"index;not null"`
	TemplateID    string     `json:"template_id" gorm:"index;not null"`
	Items         Items      `json:"items"`
	ArchivedItems Items      `json:"archived_items"`
	CreatedAt     utils.Time `json:"created_at"`
	UpdatedAt     utils.Time `json:"updated_at"`
}

func (ChecklistRecord) TableName() string {
	return "checklist_records"
}

type Items []checklistDomain.ItemState

func (i Items) Value() (driver.Value, error) {
	if len(i) == 0 {
		return "[]", nil
	}
	return json.Marshal(i)
}

func (i *Items) Scan(src any) error {
	var data []byte

	switch val := src.(type) {
	case string:
		data = []byte(val)
	case []byte:
		data = val
	case nil:
		*i = Items{}
		return nil
	default:
		return errors.New("invalid type for items")
	}

	return json.Unmarshal(data, i)
}

func (r ChecklistRecord) ToDomain() checklistDomain.ChecklistRecord {
	return checklistDomain.ChecklistRecord{
		ID:            shareddomain.ID(r.ID),
		Version:       shareddomain.Version(r.Version),
		GreenhouseID:  shareddomain.ID(r.GreenhouseID),
		TemplateID:    shareddomain.Name(r.TemplateID),
		Items:         []checklistDomain.ItemState(r.Items),
		ArchivedItems: []checklistDomain.ItemState(r.ArchivedItems),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func FromChecklistRecord(value checklistDomain.ChecklistRecord) ChecklistRecord {
	return ChecklistRecord{
		ID:            value.ID.String(),
		Version:       int(value.Version),
		GreenhouseID:  value.GreenhouseID.String(),
		TemplateID:    string(value.TemplateID),
		Items:         Items(value.Items),
		ArchivedItems: Items(value.ArchivedItems),
		CreatedAt:     value.CreatedAt,
		UpdatedAt:     value.UpdatedAt,
	}
}
