//go:generate mockgen -source=../item_store.go   -destination=./mock_item_store.go   -package=mocks
//go:generate mockgen -source=../item_cache.go   -destination=./mock_item_cache.go   -package=mocks
//go:generate mockgen -source=../write_queue.go  -destination=./mock_write_queue.go  -package=mocks
//go:generate mockgen -source=../validator.go    -destination=./mock_validator.go    -package=mocks
//go:generate mockgen -source=../logger.go       -destination=./mock_logger.go       -package=mocks
//go:generate mockgen -source=../orchestrator.go -destination=./mock_orchestrator.go -package=mocks
//go:generate mockgen -source=../message_consumer.go -destination=./mock_message_consumer.go -package=mocks

package mocks
