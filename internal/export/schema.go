package export

const schemaSQL = `
CREATE TABLE IF NOT EXISTS expenses (
    seq                  INTEGER PRIMARY KEY,
    name                 TEXT NOT NULL,
    category             TEXT NOT NULL,
    amount_text          TEXT NOT NULL,
    amount               REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS budget (
    value_text           TEXT NOT NULL,
    value                REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category);
`
