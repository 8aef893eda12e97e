package models

import "gorm.io/gorm"

// WordEntry is a single vocabulary pair in one user's word store.
// A user cannot hold two entries with the same English term.
type WordEntry struct {
	gorm.Model
	Username       string `gorm:"not null;size:100;uniqueIndex:idx_owner_term" json:"-"`
	ForeignTerm    string `gorm:"not null;size:200;uniqueIndex:idx_owner_term" json:"foreign_term"`
	NativeTerm     string `gorm:"not null;size:200" json:"native_term"`
	Level          string `gorm:"not null;size:2;default:A1" json:"level"`
	CorrectCount   int    `gorm:"not null;default:0" json:"correct_count"`
	IncorrectCount int    `gorm:"not null;default:0" json:"incorrect_count"`
}
