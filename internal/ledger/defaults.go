package ledger

// DefaultTaxonomy returns the built-in category taxonomy, used as the
// first-run seed and as the target of a taxonomy reset.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		KindIncome: {Labels: []string{
			"Reddito Principale", "Reddito Secondario", "Affitto", "Vendita", "Altro",
		}},
		KindNecessity: {Groups: map[string][]string{
			"Casa": {
				"Mutuo/Affitto", "Elettricità", "Gas", "Acqua", "Manutenzione Casa",
				"Tasse", "Telefono/Internet", "Assicurazione Casa", "Spesa/Cibo",
			},
			"Trasporti": {
				"Rate auto", "Assicurazione Auto", "Benzina", "Manutenzione",
				"Bollo", "Pedaggi", "Parcheggi", "Mezzi pubblici", "Multa",
			},
			"Salute": {
				"Medicinali", "Polizze", "Visite mediche/esami", "Sport", "Occhiali/Lenti",
			},
			"Figli": {
				"Scuola", "Abbigliamento", "Attività extra", "Babysitting",
			},
			"Istruzione": {
				"Retta scolastica", "Libri scolastici", "Formazione",
			},
			"Altro": {
				"Abbigliamento/Calzature", "Rate prestito", "Rate carta di credito", "Una tantum",
			},
		}},
		KindExtra: {Groups: map[string][]string{
			"Svago": {
				"Ristorazione", "Bar", "Cinema/Uscite/Eventi", "Abbonamenti digitali",
				"Cura personale", "Donazioni e Regali", "Divertimento", "Fumo",
				"Arredamento", "Cultura", "Viaggi", "Shopping",
			},
			"Animali": {"Cibo", "Veterinario"},
		}},
		KindWithdrawal: {Labels: []string{"Prelievo"}},
	}
}

// DefaultAccounts returns the built-in account list used when the
// persistence store has no prior snapshot.
func DefaultAccounts() []Account {
	return []Account{
		{ID: 1, Name: "N26", Type: AccountCurrent, InitialBalance: 0},
		{ID: 2, Name: "Intesa SanPaolo", Type: AccountCurrent, InitialBalance: 0},
		{ID: 3, Name: "Revolut", Type: AccountCurrent, InitialBalance: 0},
		{ID: 4, Name: "PayPal", Type: AccountCurrent, InitialBalance: 0},
	}
}
