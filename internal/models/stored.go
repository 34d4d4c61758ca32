package models

import (
	"encoding/json"
	"fmt"
)

// storedCard is the on-disk shape of a card. Early versions kept a single
// "phone" field; pointer fields distinguish absent from empty so that the
// migration can tell a legacy record from a current one.
type storedCard struct {
	Mobile    *string `json:"mobile,omitempty"`
	Tel       *string `json:"tel,omitempty"`
	Phone     *string `json:"phone,omitempty"` // retired single phone field
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Company   string  `json:"company"`
	Title     string  `json:"title"`
	Email     string  `json:"email"`
	Website   string  `json:"website"`
	Address   string  `json:"address"`
	Group     Group   `json:"group"`
	ImageURL  string  `json:"imageUrl,omitempty"`
	CreatedAt int64   `json:"createdAt"`
}

// DecodeStoredCard deserializes a raw stored record and normalizes it to the
// current shape. A legacy record carrying "phone" and lacking both "mobile"
// and "tel" comes back with Mobile set to the legacy value and Tel empty;
// the legacy field never resurfaces. The transform is idempotent.
func DecodeStoredCard(data []byte) (*Card, error) {
	var raw storedCard
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal card: %w", err)
	}

	card := &Card{
		ID:        raw.ID,
		Name:      raw.Name,
		Company:   raw.Company,
		Title:     raw.Title,
		Email:     raw.Email,
		Website:   raw.Website,
		Address:   raw.Address,
		Group:     raw.Group,
		ImageURL:  raw.ImageURL,
		CreatedAt: raw.CreatedAt,
	}

	if raw.Phone != nil && raw.Mobile == nil && raw.Tel == nil {
		card.Mobile = *raw.Phone
		card.Tel = ""
	} else {
		if raw.Mobile != nil {
			card.Mobile = *raw.Mobile
		}
		if raw.Tel != nil {
			card.Tel = *raw.Tel
		}
	}

	if !card.Group.Valid() {
		card.Group = GroupOther
	}

	return card, nil
}

// EncodeCard serializes a card in the current stored shape. Mobile and Tel
// are always written, so an encoded card decodes without migration.
func EncodeCard(card *Card) ([]byte, error) {
	data, err := json.Marshal(card)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal card: %w", err)
	}
	return data, nil
}
