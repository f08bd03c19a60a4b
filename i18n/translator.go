package i18n

// Translator retrieves localized messages for validation issue codes.
// data provides optional metadata to embed in the message (for example,
// "min" or "got").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "unsupported_version":
			return "サポートされていないバージョンです"
		case "required":
			return "必須プロパティが不足しています"
		case "empty_id":
			return "IDが空です"
		case "duplicate_id":
			return "IDが重複しています"
		case "invalid_type":
			return "型が不正です"
		case "invalid_enum":
			return "許可されていない値です"
		case "invalid_bounds":
			return "最小値が最大値を超えています"
		case "invalid_step":
			return "ステップ値が不正です"
		case "invalid_currency":
			return "通貨コードが不正です"
		case "invalid_timestamp":
			return "日時が不正です"
		case "missing_options":
			return "選択肢が定義されていません"
		case "unknown_option":
			return "未知の選択肢です"
		case "unknown_customization":
			return "未知のカスタマイズです"
		case "cardinality":
			return "選択数が範囲外です"
		case "out_of_range":
			return "値が範囲外です"
		case "default_mismatch":
			return "デフォルト値の形が一致しません"
		case "payment_mismatch":
			return "支払い金額が一致しません"
		case "delivery_mismatch":
			return "配達情報が注文種別と一致しません"
		}
	default: // "en"
		switch code {
		case "unsupported_version":
			return "unsupported version"
		case "required":
			return "required property missing"
		case "empty_id":
			return "empty id"
		case "duplicate_id":
			return "duplicate id"
		case "invalid_type":
			return "invalid type"
		case "invalid_enum":
			return "value not in the allowed set"
		case "invalid_bounds":
			return "minimum exceeds maximum"
		case "invalid_step":
			return "invalid step"
		case "invalid_currency":
			return "invalid currency code"
		case "invalid_timestamp":
			return "invalid timestamp"
		case "missing_options":
			return "no options defined"
		case "unknown_option":
			return "unknown option"
		case "unknown_customization":
			return "unknown customization"
		case "cardinality":
			return "selection count out of range"
		case "out_of_range":
			return "value out of range"
		case "default_mismatch":
			return "default value shape mismatch"
		case "payment_mismatch":
			return "payment amounts do not add up"
		case "delivery_mismatch":
			return "delivery details do not match the order type"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
