package component

// Wave — состояние текущей волны у планировщика появления врагов.
type Wave struct {
	Index       int     // Номер волны, с нуля
	Spawned     int     // Сколько врагов этой волны уже появилось
	Accumulator float64 // Время, накопленное с последнего появления
}
