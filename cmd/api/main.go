package main

import (
	"log"
	"os"
	"strconv"
	"strings"

	"Connect_Life/internal/model"
	"Connect_Life/internal/pkg"
	"Connect_Life/internal/repository/mysql"
	"Connect_Life/internal/repository/redis"
	"Connect_Life/internal/router"
)

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	dsn := getenv("MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/connect_life?charset=utf8mb4&parseTime=True")
	if err := mysql.InitDB(dsn); err != nil {
		panic(err)
	}

	// 连接redis（密码重置验证码）
	redisDB, _ := strconv.Atoi(getenv("REDIS_DB", "0"))
	if err := redis.Init(getenv("REDIS_ADDR", "127.0.0.1:6379"), os.Getenv("REDIS_PASSWORD"), redisDB); err != nil {
		panic(err)
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	mysql.DB.AutoMigrate(
		&model.User{},
		&model.Chat{},
		&model.ChatMember{},
		&model.Message{},
		&model.Venue{},
		&model.Event{},
	)

	// kafka 社区动态，未配置 broker 时关闭
	var producer *pkg.KafkaProducer
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		p, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: strings.Split(brokers, ","),
			Topic:   getenv("KAFKA_TOPIC", "connect-life-activity"),
		})
		if err != nil {
			panic(err)
		}
		producer = p
		defer producer.Close()
	} else {
		log.Println("KAFKA_BROKERS not set, activity events disabled")
	}

	smtpPort, _ := strconv.Atoi(getenv("SMTP_PORT", "587"))
	emailCfg := pkg.SMTPConfig{
		Host:     getenv("SMTP_HOST", "smtp.example.com"),
		Port:     smtpPort,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     getenv("SMTP_FROM", "Connect Life <no-reply@example.com>"),
	}

	// 上传目录必须存在
	if err := os.MkdirAll(pkg.UploadDir, 0o755); err != nil {
		panic(err)
	}

	// Gin
	r := router.InitRouter(mysql.DB, producer, emailCfg)
	if err := r.Run(":" + getenv("PORT", "4000")); err != nil {
		log.Fatal(err)
	}
}
