package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeySelectFile        = "select_file"
	KeyNoFileSelected    = "no_file_selected"
	KeyOutputFormat      = "output_format"
	KeyConvert           = "convert"
	KeyConverting        = "converting"
	KeyNoResult          = "no_result"
	KeyConversionFailed  = "conversion_failed"
	KeyPleaseSelectFile  = "please_select_file"
	KeySave              = "save"
	KeyOpen              = "open"
	KeyCopyPath          = "copy_path"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyEndpoint          = "endpoint"
	KeyRequestTimeout    = "request_timeout"
	KeyOutputDirectory   = "output_directory"
	KeyAutoReveal        = "auto_reveal"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeySavedTo           = "saved_to"
	KeyPathCopied        = "path_copied"
	KeyErrorSaving       = "error_saving"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyErrorReadingFile  = "error_reading_file"
	KeyInvalidEndpoint   = "invalid_endpoint"
	KeyNotice            = "notice"
	KeyConversionSuccess = "conversion_success"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "Image Converter",
		KeySelectFile:        "Choose image…",
		KeyNoFileSelected:    "No file selected",
		KeyOutputFormat:      "Output format",
		KeyConvert:           "Convert",
		KeyConverting:        "Converting…",
		KeyNoResult:          "Converted image will appear here",
		KeyConversionFailed:  "Conversion failed",
		KeyPleaseSelectFile:  "Please select a file first",
		KeySave:              "Save",
		KeyOpen:              "Open",
		KeyCopyPath:          "Copy path",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyEndpoint:          "Conversion endpoint",
		KeyRequestTimeout:    "Request timeout (seconds)",
		KeyOutputDirectory:   "Output directory",
		KeyAutoReveal:        "Reveal saved files",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeySavedTo:           "Saved to",
		KeyPathCopied:        "Path copied to clipboard",
		KeyErrorSaving:       "Error saving file",
		KeyErrorOpeningFile:  "Error opening file",
		KeyErrorReadingFile:  "Error reading file",
		KeyInvalidEndpoint:   "Invalid endpoint",
		KeyNotice:            "Notice",
		KeyConversionSuccess: "Conversion completed",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Конвертер изображений",
		KeySelectFile:        "Выбрать изображение…",
		KeyNoFileSelected:    "Файл не выбран",
		KeyOutputFormat:      "Формат",
		KeyConvert:           "Конвертировать",
		KeyConverting:        "Конвертация…",
		KeyNoResult:          "Здесь появится результат",
		KeyConversionFailed:  "Ошибка конвертации",
		KeyPleaseSelectFile:  "Сначала выберите файл",
		KeySave:              "Сохранить",
		KeyOpen:              "Открыть",
		KeyCopyPath:          "Копировать путь",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyEndpoint:          "Адрес сервиса",
		KeyRequestTimeout:    "Таймаут запроса (сек)",
		KeyOutputDirectory:   "Папка сохранения",
		KeyAutoReveal:        "Показывать сохранённые файлы",
		KeyCancel:            "Отмена",
		KeyBrowse:            "Обзор",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeySavedTo:           "Сохранено в",
		KeyPathCopied:        "Путь скопирован",
		KeyErrorSaving:       "Ошибка сохранения файла",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyErrorReadingFile:  "Ошибка чтения файла",
		KeyInvalidEndpoint:   "Неверный адрес",
		KeyNotice:            "Внимание",
		KeyConversionSuccess: "Конвертация завершена",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Conversor de Imagens",
		KeySelectFile:        "Escolher imagem…",
		KeyNoFileSelected:    "Nenhum arquivo selecionado",
		KeyOutputFormat:      "Formato de saída",
		KeyConvert:           "Converter",
		KeyConverting:        "Convertendo…",
		KeyNoResult:          "A imagem convertida aparecerá aqui",
		KeyConversionFailed:  "Falha na conversão",
		KeyPleaseSelectFile:  "Selecione um arquivo primeiro",
		KeySave:              "Salvar",
		KeyOpen:              "Abrir",
		KeyCopyPath:          "Copiar caminho",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyEndpoint:          "Endpoint de conversão",
		KeyRequestTimeout:    "Tempo limite (segundos)",
		KeyOutputDirectory:   "Diretório de saída",
		KeyAutoReveal:        "Mostrar arquivos salvos",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Navegar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeySavedTo:           "Salvo em",
		KeyPathCopied:        "Caminho copiado",
		KeyErrorSaving:       "Erro ao salvar arquivo",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyErrorReadingFile:  "Erro ao ler arquivo",
		KeyInvalidEndpoint:   "Endpoint inválido",
		KeyNotice:            "Aviso",
		KeyConversionSuccess: "Conversão concluída",
	}
}
