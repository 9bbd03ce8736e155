package store

// schema holds the DDL for the category tables. Executed on startup;
// idempotent via IF NOT EXISTS.
const schema = `
CREATE TABLE IF NOT EXISTS taxpayers (
    id             TEXT PRIMARY KEY,
    pan            TEXT NOT NULL DEFAULT '',
    name           TEXT NOT NULL DEFAULT '',
    itr_type       TEXT NOT NULL DEFAULT '',
    financial_year TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS interest_entries (
    id          BIGSERIAL PRIMARY KEY,
    taxpayer_id TEXT NOT NULL REFERENCES taxpayers(id),
    source      TEXT NOT NULL DEFAULT '',
    amount      NUMERIC(15,2) NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_interest_entries_taxpayer ON interest_entries(taxpayer_id);

CREATE TABLE IF NOT EXISTS capital_gains (
    taxpayer_id  TEXT NOT NULL REFERENCES taxpayers(id),
    asset_type   TEXT NOT NULL,
    total_profit NUMERIC(15,2) NOT NULL DEFAULT 0,
    PRIMARY KEY (taxpayer_id, asset_type)
);

CREATE TABLE IF NOT EXISTS deemed_incomes (
    taxpayer_id TEXT PRIMARY KEY REFERENCES taxpayers(id),
    short_term  NUMERIC(15,2) NOT NULL DEFAULT 0,
    long_term   NUMERIC(15,2) NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS dividend_incomes (
    taxpayer_id  TEXT PRIMARY KEY REFERENCES taxpayers(id),
    total_amount NUMERIC(15,2) NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS rental_incomes (
    taxpayer_id        TEXT PRIMARY KEY REFERENCES taxpayers(id),
    net_taxable_income NUMERIC(15,2) NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS professional_incomes (
    taxpayer_id TEXT PRIMARY KEY REFERENCES taxpayers(id),
    revenue     NUMERIC(15,2) NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS business_incomes (
    taxpayer_id    TEXT PRIMARY KEY REFERENCES taxpayers(id),
    cash_profit    NUMERIC(15,2) NOT NULL DEFAULT 0,
    digital_profit NUMERIC(15,2) NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS profit_loss_records (
    taxpayer_id TEXT PRIMARY KEY REFERENCES taxpayers(id),
    total       NUMERIC(15,2) NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS tds_records (
    taxpayer_id TEXT PRIMARY KEY REFERENCES taxpayers(id),
    balance     NUMERIC(15,2) NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS tax_payments (
    id          BIGSERIAL PRIMARY KEY,
    taxpayer_id TEXT NOT NULL REFERENCES taxpayers(id),
    kind        TEXT NOT NULL DEFAULT 'advance',
    amount      NUMERIC(15,2) NOT NULL DEFAULT 0,
    paid_on     DATE
);
CREATE INDEX IF NOT EXISTS idx_tax_payments_taxpayer ON tax_payments(taxpayer_id);

CREATE TABLE IF NOT EXISTS tax_summaries (
    taxpayer_id                TEXT NOT NULL REFERENCES taxpayers(id),
    financial_year             TEXT NOT NULL,
    itr_type                   TEXT NOT NULL DEFAULT '',
    gross_income               NUMERIC(15,2) NOT NULL,
    taxable_income             NUMERIC(15,2) NOT NULL,
    income_tax_at_normal_rates NUMERIC(15,2) NOT NULL,
    health_and_education_cess  NUMERIC(15,2) NOT NULL,
    tax_liability              NUMERIC(15,2) NOT NULL,
    tax_paid                   NUMERIC(15,2) NOT NULL,
    tax_due                    NUMERIC(15,2) NOT NULL,
    computed_at                TIMESTAMPTZ NOT NULL,
    PRIMARY KEY (taxpayer_id, financial_year)
);
`
