package check_service_compatibility

// Request модель запроса проверки совместимости услуг
type Request struct {
	ServiceIDs []int64
}

// Response модель ответа
type Response struct {
	Compatible              bool       // Есть хотя бы один мастер, оказывающий весь набор
	CompatibleProviderCount int        // Количество таких мастеров
	CompatibleProviders     []Provider // Мастера по ID
	IncompatibleServiceIDs  []int64    // Услуги, без которых набор становится совместимым
}

// Provider совместимый мастер
type Provider struct {
	ID   int64
	Name string
}
