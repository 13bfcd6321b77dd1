package chat

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Thread struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID     uuid.UUID `gorm:"column:org_id;type:uuid;not null;index"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	Title     string    `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// Message bisa berupa balasan bersarang (ParentID menunjuk message lain
// di thread yang sama) dan bisa membawa satu poll.
type Message struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrgID     uuid.UUID  `gorm:"column:org_id;type:uuid;not null;index"`
	ThreadID  uuid.UUID  `gorm:"type:uuid;not null;index"`
	ParentID  *uuid.UUID `gorm:"type:uuid"`
	AuthorID  uuid.UUID  `gorm:"type:uuid;not null"`
	Body      string     `gorm:"type:text"`
	Poll      *Poll      `gorm:"type:jsonb;serializer:json"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Poll disimpan sebagai struktur bertipe, bukan blob bebas yang
// dipatch per konvensi. Satu opsi menyimpan daftar pemilihnya; toggle
// vote adalah satu-satunya operasi mutasinya.
type Poll struct {
	Question string       `json:"question"`
	Options  []PollOption `json:"options"`
}

type PollOption struct {
	ID       string   `json:"id"`
	Text     string   `json:"text"`
	VoterIDs []string `json:"voter_ids"`
}

// ToggleVote menambah suara user pada opsi kalau belum ada, mencabutnya
// kalau sudah ada. Mengembalikan false kalau opsi tidak dikenal.
func (p *Poll) ToggleVote(optionID, userID string) bool {
	for i := range p.Options {
		if p.Options[i].ID != optionID {
			continue
		}

		voters := p.Options[i].VoterIDs
		for j, v := range voters {
			if v == userID {
				p.Options[i].VoterIDs = append(voters[:j], voters[j+1:]...)
				return true
			}
		}
		p.Options[i].VoterIDs = append(voters, userID)
		return true
	}
	return false
}
