// Package sqlite implements the SQLite Store for shelter records.
package sqlite

// Schema DDL. ordinal preserves catalog order across saves.
const createPets = `CREATE TABLE IF NOT EXISTS pets (
    pet_id TEXT PRIMARY KEY,
    ordinal INTEGER NOT NULL,
    kind TEXT NOT NULL,
    name TEXT NOT NULL,
    age INTEGER NOT NULL,
    breed TEXT NOT NULL,
    adopted INTEGER NOT NULL
);`

const createPetsOrdinalIndex = `CREATE INDEX IF NOT EXISTS idx_pets_ordinal ON pets (ordinal);`

// schemaStatements run in order on Open.
var schemaStatements = []string{
	createPets,
	createPetsOrdinalIndex,
}
