package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/phrasecards/internal/database"
)

const (
	selectSectionsQuery = `SELECT section_key, section_position
FROM phrase_sections WHERE collection = ? ORDER BY section_position`
	selectCardsQuery = `SELECT section_position, card_position, payload
FROM phrase_cards WHERE collection = ? ORDER BY section_position, card_position`
	deleteSectionsQuery = `DELETE FROM phrase_sections WHERE collection = ?`
	deleteCardsQuery    = `DELETE FROM phrase_cards WHERE collection = ?`
	insertSectionQuery  = `INSERT INTO phrase_sections (collection, section_key, section_position)
VALUES (?, ?, ?)`
	insertCardQuery = `INSERT INTO phrase_cards (collection, section_key, section_position, card_position, payload)
VALUES (?, ?, ?, ?, ?)`
)

type sectionRow struct {
	SectionKey      string `db:"section_key"`
	SectionPosition int    `db:"section_position"`
}

type cardRow struct {
	SectionPosition int    `db:"section_position"`
	CardPosition    int    `db:"card_position"`
	Payload         []byte `db:"payload"`
}

// DBSource reads a collection from the phrase_sections and phrase_cards tables.
// Sections are stored on their own so a section without cards survives a round trip.
// Each card payload is one JSON card record.
type DBSource struct {
	db         *sqlx.DB
	collection string
}

func NewDBSource(db *sqlx.DB, collection string) *DBSource {
	return &DBSource{db: db, collection: collection}
}

func (s *DBSource) Load(ctx context.Context) (*Document, error) {
	var sectionRows []sectionRow
	if err := s.db.SelectContext(ctx, &sectionRows, selectSectionsQuery, s.collection); err != nil {
		return nil, fmt.Errorf("db.SelectContext(phrase_sections) > %w", err)
	}
	var rows []cardRow
	if err := s.db.SelectContext(ctx, &rows, selectCardsQuery, s.collection); err != nil {
		return nil, fmt.Errorf("db.SelectContext(phrase_cards) > %w", err)
	}

	sections := make([]Section, 0, len(sectionRows))
	byPosition := make(map[int]int, len(sectionRows))
	for _, row := range sectionRows {
		byPosition[row.SectionPosition] = len(sections)
		sections = append(sections, Section{Key: row.SectionKey})
	}
	for _, row := range rows {
		index, ok := byPosition[row.SectionPosition]
		if !ok {
			return nil, fmt.Errorf("card %d refers to missing section position %d", row.CardPosition, row.SectionPosition)
		}
		var card Card
		if err := json.Unmarshal(row.Payload, &card); err != nil {
			return nil, fmt.Errorf("section %s card %d: json.Unmarshal > %w", sections[index].Key, row.CardPosition, err)
		}
		sections[index].Cards = append(sections[index].Cards, card)
	}
	return newDocument(s.collection, sections)
}

// Replace overwrites the stored collection with doc in a single transaction.
func (s *DBSource) Replace(ctx context.Context, doc *Document) error {
	return database.RunInTx(ctx, s.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteCardsQuery, s.collection); err != nil {
			return fmt.Errorf("tx.ExecContext(delete phrase_cards) > %w", err)
		}
		if _, err := tx.ExecContext(ctx, deleteSectionsQuery, s.collection); err != nil {
			return fmt.Errorf("tx.ExecContext(delete phrase_sections) > %w", err)
		}
		for sectionPosition, section := range doc.Sections {
			if _, err := tx.ExecContext(ctx, insertSectionQuery, s.collection, section.Key, sectionPosition); err != nil {
				return fmt.Errorf("tx.ExecContext(insert phrase_sections) > %w", err)
			}
			for cardPosition, card := range section.Cards {
				payload, err := json.Marshal(card)
				if err != nil {
					return fmt.Errorf("section %s card %d: json.Marshal > %w", section.Key, cardPosition, err)
				}
				if _, err := tx.ExecContext(ctx, insertCardQuery,
					s.collection, section.Key, sectionPosition, cardPosition, payload); err != nil {
					return fmt.Errorf("tx.ExecContext(insert phrase_cards) > %w", err)
				}
			}
		}
		return nil
	})
}

func (s *DBSource) Close() error {
	return s.db.Close()
}

func (s *DBSource) String() string {
	return "mysql:phrase_cards/" + s.collection
}
