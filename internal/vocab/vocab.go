// Package vocab defines the controlled vocabularies used to classify grant
// records, and the matching that maps free text onto them.
//
// Each vocabulary is a closed, ordered list of canonical terms. The lists
// are initialized once and never mutated; accessors return copies.
package vocab

// grantCategories holds the known values for "Categoria del bando_MR".
var grantCategories = []string{
	"credito d'imposta",
	"tasso agevolato",
	"voucher",
	"garanzia",
	"fondo perduto",
	"investimento in cambio di %",
	"tasso 0",
}

// audiences holds the known values for "A chi si rivolge_MR".
var audiences = []string{
	"liberi professionisti",
	"enti pubblici",
	"formatori",
	"enti del terzo settore",
	"cittadini",
	"piccola impresa",
	"fondazioni",
	"startup",
	"datori di lavoro",
	"progetto non costituito",
	"università",
	"PMI",
	"micro impresa",
	"cooperative",
	"consorzi",
	"associazioni",
	"grandi imprese",
}

// sectors holds the known values for "Settore_MR".
var sectors = []string{
	"Agricoltura",
	"Consulenza",
	"Artigianato",
	"Alimentare",
	"Aiuto e supporto",
	"Cultura",
	"Istruzione",
	"Socialità",
	"Industria",
	"R&S",
	"Sostenibilità",
	"Turismo",
	"Finanziario",
	"Innovazione e digitale",
	"Servizi",
	"Sport",
}

// spendingCategories holds the known values for "Spese ammissibili_MR".
var spendingCategories = []string{
	"Personale dipendente",
	"Personale esterno/consulenza",
	"Formazione",
	"Attrezzature e macchinari",
	"Affitto",
	"Utenze",
	"Acquisto immobili",
	"Opere edili e ristrutturazione",
	"Arredi",
	"Impianti di produzione",
	"Polizze assicurative",
	"Spese legali",
	"Spese amministrative",
	"Marketing",
	"Partecipazione a fiere ed eventi",
	"Spese di logistica",
	"Softwere",
	"Digitalizzazione",
	"Studi di fattibilità",
	"Ricerca di mercato",
	"Registrazione brevetto",
	"Registrazione marchio",
	"Certificazione",
	"Servizi",
	"Brevetti e licenze",
	"Spese generali / altri oneri",
	"Fabbricati e terreni",
}

// atecoSections holds the ATECO section letter codes for "Sezione".
var atecoSections = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K",
	"L", "M", "N", "O", "P", "Q", "R", "S", "T", "U",
}

// promoters holds the known values for "Promotore del bando".
var promoters = []string{
	"Invitalia",
	"Commissione Europea",
	"Ministero delle Imprese e del Made in Italy (MIMIT)",
	"Fondazioni",
	"Banca d'Italia",
	"Associazioni",
	"Regioni",
	"Camera di Commercio",
	"Ministeri",
	"Soggetti speciali",
}

// emanations holds the known values for "Emanazione".
var emanations = []string{
	"CCIAA",
	"Europeo",
	"Nazionale",
	"Regionale",
}

// grantStates holds the known values for "Stato del bando".
var grantStates = []string{
	"Scaduto",
	"In scadenza",
	"Attivo",
	"In uscita",
}

// grantTypes holds the known values for "Tipo".
var grantTypes = []string{
	"Data di chiusura",
	"Procedura a sportello",
	"Esaurimento fondi",
	"Clickday",
}

// localities holds the known values for "Località_MR".
var localities = []string{
	"Valle d'Aosta", "Piemonte", "Liguria", "Lombardia", "Veneto",
	"Friuli Venezia Giulia", "Emilia Romagna", "Trentino Alto Adige",
	"Abruzzo", "Molise", "Marche", "Puglia", "Calabria", "Basilicata",
	"Sicilia", "Sardegna", "Campania", "Lazio", "Toscana", "Italia",
	"Europa", "Mondo",
}

// aidRegimes holds the known values for "Regime di aiuto".
var aidRegimes = []string{"De minimis", "GBER"}

func clone(list []string) []string {
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// GrantCategories returns the grant category vocabulary.
func GrantCategories() []string { return clone(grantCategories) }

// Audiences returns the target-audience vocabulary.
func Audiences() []string { return clone(audiences) }

// Sectors returns the sector vocabulary.
func Sectors() []string { return clone(sectors) }

// SpendingCategories returns the eligible-spending vocabulary.
func SpendingCategories() []string { return clone(spendingCategories) }

// AtecoSections returns the ATECO section letter codes.
func AtecoSections() []string { return clone(atecoSections) }

// Promoters returns the promoter organization vocabulary.
func Promoters() []string { return clone(promoters) }

// Emanations returns the emanation level vocabulary.
func Emanations() []string { return clone(emanations) }

// GrantStates returns the grant state vocabulary.
func GrantStates() []string { return clone(grantStates) }

// GrantTypes returns the grant type vocabulary.
func GrantTypes() []string { return clone(grantTypes) }

// Localities returns the geographic scope vocabulary.
func Localities() []string { return clone(localities) }

// AidRegimes returns the aid regime vocabulary.
func AidRegimes() []string { return clone(aidRegimes) }
