package types

// EntityID — идентификатор сущности в мире. Ноль означает «нет сущности».
type EntityID uint64
