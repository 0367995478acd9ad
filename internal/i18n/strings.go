package i18n

type Key string

const (
	KeyTitle                  Key = "title"
	KeyNext                   Key = "next"
	KeyReveal                 Key = "reveal"
	KeyRestart                Key = "restart"
	KeySwap                   Key = "swap"
	KeyQuit                   Key = "quit"
	KeyHelp                   Key = "help"
	KeyTranslationUnavailable Key = "translationUnavailable"
	KeySourceLabel            Key = "sourceLabel"
	KeyTargetLabel            Key = "targetLabel"
	KeySectionComplete        Key = "sectionComplete"
	KeyNextSection            Key = "nextSection"
	KeySectionCompleteMessage Key = "sectionCompleteMessage"
	KeyAllCompleteMessage     Key = "sectionEndMessage"
	KeyLoadError              Key = "loadError"
	KeyOptions                Key = "options"
	KeyProgress               Key = "progress"
	KeyDirection              Key = "direction"
	KeySectionOf              Key = "sectionOf"
	KeyUnknownCommand         Key = "unknownCommand"
	KeyUnsupportedLanguage    Key = "unsupportedLanguage"
	KeyCommands               Key = "commands"

	keyCardCount Key = "cardCount"
)

var uiStrings = map[string]map[Key]string{
	"de": {
		KeyTitle:                  "Häufige Phrasen für Dialoge",
		KeyNext:                   "Weiter",
		KeyReveal:                 "Übersetzung zeigen",
		KeyRestart:                "Neu starten",
		KeySwap:                   "Richtung tauschen",
		KeyQuit:                   "Beenden",
		KeyHelp:                   "Hilfe",
		KeyTranslationUnavailable: "Übersetzung nicht verfügbar",
		KeySourceLabel:            "Quellsprache",
		KeyTargetLabel:            "Zielsprache",
		KeySectionComplete:        "Abschnitt abgeschlossen",
		KeyNextSection:            "Nächster Abschnitt",
		KeySectionCompleteMessage: `Abschnitt abgeschlossen. Drücken Sie "Weiter", um zum nächsten Abschnitt zu gelangen.`,
		KeyAllCompleteMessage:     "Glückwunsch! Sie haben alle Abschnitte abgeschlossen.",
		KeyLoadError:              "Fehler beim Laden der Daten. Bitte prüfen Sie die Datenquelle.",
		KeyOptions:                "Varianten ({0})",
		KeyProgress:               "{0} / {1}",
		KeyDirection:              "{0} → {1}",
		KeySectionOf:              "Abschnitt {0} von {1}",
		KeyUnknownCommand:         "Unbekannter Befehl: {0}",
		KeyUnsupportedLanguage:    "Nicht unterstützte Sprache: {0}",
		KeyCommands:               "Befehle",
	},
	"uk": {
		KeyTitle:                  "Поширені фрази для діалогу",
		KeyNext:                   "Далі",
		KeyReveal:                 "Показати переклад",
		KeyRestart:                "Почати знову",
		KeySwap:                   "Змінити напрямок",
		KeyQuit:                   "Вийти",
		KeyHelp:                   "Довідка",
		KeyTranslationUnavailable: "Переклад недоступний",
		KeySourceLabel:            "Мова-джерело",
		KeyTargetLabel:            "Мова перекладу",
		KeySectionComplete:        "Розділ завершено",
		KeyNextSection:            "Наступний розділ",
		KeySectionCompleteMessage: `Розділ завершено. Натисніть "Далі" для переходу до наступного розділу.`,
		KeyAllCompleteMessage:     "Вітаємо! Ви завершили всі розділи.",
		KeyLoadError:              "Помилка завантаження даних. Перевірте джерело даних.",
		KeyOptions:                "Варіанти ({0})",
		KeyProgress:               "{0} / {1}",
		KeyDirection:              "{0} → {1}",
		KeySectionOf:              "Розділ {0} з {1}",
		KeyUnknownCommand:         "Невідома команда: {0}",
		KeyUnsupportedLanguage:    "Непідтримувана мова: {0}",
		KeyCommands:               "Команди",
	},
	"en": {
		KeyTitle:                  "Common phrases for dialogues",
		KeyNext:                   "Next",
		KeyReveal:                 "Show translation",
		KeyRestart:                "Restart",
		KeySwap:                   "Swap direction",
		KeyQuit:                   "Quit",
		KeyHelp:                   "Help",
		KeyTranslationUnavailable: "Translation unavailable",
		KeySourceLabel:            "Source language",
		KeyTargetLabel:            "Target language",
		KeySectionComplete:        "Section complete",
		KeyNextSection:            "Next section",
		KeySectionCompleteMessage: `Section complete. Press "Next" to go to the next section.`,
		KeyAllCompleteMessage:     "Congratulations! You finished all sections.",
		KeyLoadError:              "Failed to load the data. Please check the data source.",
		KeyOptions:                "Alternatives ({0})",
		KeyProgress:               "{0} / {1}",
		KeyDirection:              "{0} → {1}",
		KeySectionOf:              "Section {0} of {1}",
		KeyUnknownCommand:         "Unknown command: {0}",
		KeyUnsupportedLanguage:    "Unsupported language: {0}",
		KeyCommands:               "Commands",
	},
}

var languageNames = map[string]string{
	"de": "Deutsch",
	"uk": "Українська",
	"ar": "العربية",
	"tr": "Türkçe",
	"en": "English",
	"vi": "Tiếng Việt",
	"es": "Español",
	"bg": "Български",
}

// sectionNames is keyed by lower-case section key.
var sectionNames = map[string]string{
	"1_begruessung":      "Привітання",
	"2_gespraech_beginn": "Початок розмови",
	"3_vorschlag_machen": "Пропозиції",
	"4_zustimmung":       "Згода",
	"5_ablehnung":        "Відмова",
	"6_zeit_vorschlagen": "Час та зустрічі",
	"7_weg_transport":    "Транспорт",
	"8_verabschiedung":   "Прощання",
}
