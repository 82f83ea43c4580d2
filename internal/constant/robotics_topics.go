package constant

import "robotics-rag-be/internal/dto"

// RoboticsTopics is the fixed list of topics the book covers.
var RoboticsTopics = []dto.TopicDTO{
	{Id: "ros2", Name: "ROS 2", Description: "Robot Operating System 2"},
	{Id: "gazebo", Name: "Gazebo", Description: "Robot Simulation Framework"},
	{Id: "unity", Name: "Unity", Description: "Digital Twin Simulation"},
	{Id: "nvidia-isaac", Name: "NVIDIA Isaac", Description: "AI-Robot Brain Platform"},
	{Id: "vla", Name: "VLA", Description: "Vision-Language-Action Models"},
}
