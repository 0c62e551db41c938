package i18n

import (
	"log"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
)

var (
	mu   sync.RWMutex
	lang = "en"
)

var supported = []string{"pt", "es", "ru"}

var translations = map[string]map[string]string{
	"Session": {
		"pt": "Sessão",
		"es": "Sesión",
		"ru": "Работа",
	},
	"Break": {
		"pt": "Pausa",
		"es": "Descanso",
		"ru": "Перерыв",
	},
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Stop": {
		"pt": "Parar",
		"es": "Parar",
		"ru": "Стоп",
	},
	"Reset": {
		"pt": "Resetar",
		"es": "Reiniciar",
		"ru": "Сброс",
	},
	"Show": {
		"pt": "Mostrar",
		"es": "Mostrar",
		"ru": "Показать",
	},
	"Quit": {
		"pt": "Sair",
		"es": "Salir",
		"ru": "Выход",
	},
	"About PomoTimer": {
		"pt": "Sobre o PomoTimer",
		"es": "Acerca de PomoTimer",
		"ru": "О PomoTimer",
	},
	"Close": {
		"pt": "Fechar",
		"es": "Cerrar",
		"ru": "Закрыть",
	},
}

// Init picks the UI language. A non-empty override (from config or
// POMOTIMER_LANG) wins over the system locale.
func Init(override string) {
	if forced := strings.TrimSpace(override); forced != "" {
		log.Printf("Language override is set to: '%s'", forced)
		SetLang(forced)
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		SetLang("en")
		return
	}
	if len(userLocales) == 0 {
		log.Println("No user locale detected, defaulting to english")
		SetLang("en")
		return
	}

	log.Printf("Detected user locale: %s", userLocales[0])
	SetLang(userLocales[0])
	log.Printf("Language set to: %s", GetLang())
}

// SetLang normalises a locale such as "pt_BR" or "es-MX" to one of the
// supported languages, falling back to english.
func SetLang(l string) {
	l = strings.ToLower(strings.TrimSpace(l))
	resolved := "en"
	for _, s := range supported {
		if strings.HasPrefix(l, s) {
			resolved = s
			break
		}
	}
	mu.Lock()
	lang = resolved
	mu.Unlock()
}

func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}
